package Stats

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
)

type WordCount struct {
	Word  string
	Count uint64
}

type LengthCount struct {
	Length int // in characters
	Count  uint64
}

type Report struct {
	Total, Distinct uint64
	AverageLen      float64       // weighted by occurrences
	ByLength        []LengthCount // ascending length
	Top             []WordCount   // most used first, ties by word
}

// rankLess orders the most used words first.
func rankLess(a, b WordCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

// Summarize c, keeping the topN most used words and the maxLengths shortest word lengths.
func Summarize(c Counter, topN, maxLengths int) Report {
	var rep Report
	var sumLen uint64
	top := btree.NewG[WordCount](8, rankLess)
	byLen := treemap.NewWith(utils.IntComparator)
	c.Range(func(w string, n uint64) bool {
		l := utf8.RuneCountInString(w)
		rep.Total += n
		rep.Distinct++
		sumLen += uint64(l) * n
		if prev, ok := byLen.Get(l); ok {
			byLen.Put(l, prev.(uint64)+n)
		} else {
			byLen.Put(l, n)
		}
		if topN > 0 {
			top.ReplaceOrInsert(WordCount{w, n})
			if top.Len() > topN {
				top.DeleteMax()
			}
		}
		return true
	})
	if rep.Total > 0 {
		rep.AverageLen = float64(sumLen) / float64(rep.Total)
	}
	for it := byLen.Iterator(); it.Next() && len(rep.ByLength) < maxLengths; {
		rep.ByLength = append(rep.ByLength, LengthCount{it.Key().(int), it.Value().(uint64)})
	}
	top.Ascend(func(wc WordCount) bool {
		rep.Top = append(rep.Top, wc)
		return true
	})
	return rep
}

// WriteTo writes rep in a human-readable form.
func (rep Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString("############## STATS ################\n")
	fmt.Fprintf(&sb, "Total: %s\n", humanize.Comma(int64(rep.Total)))
	fmt.Fprintf(&sb, "Total differents: %s\n", humanize.Comma(int64(rep.Distinct)))
	fmt.Fprintf(&sb, "Average size: %s\n", humanize.FormatFloat("#.##", rep.AverageLen))
	sb.WriteString("######### COUNT BY LENGTH ###########\n")
	for _, lc := range rep.ByLength {
		fmt.Fprintf(&sb, "Words of %d characters: %s\n", lc.Length, humanize.Comma(int64(lc.Count)))
	}
	fmt.Fprintf(&sb, "######### TOP %d MOST USED ###########\n", len(rep.Top))
	for _, wc := range rep.Top {
		fmt.Fprintf(&sb, "%s (used %s times)\n", wc.Word, humanize.Comma(int64(wc.Count)))
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
