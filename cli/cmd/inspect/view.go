package inspect

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/denv/env"
)

func keysOf(e env.Env) []string {
	return slices.Collect(e.Keys())
}

// findMatches returns the keys matching query, best first. An empty query
// matches every key in environment order.
func findMatches(query string, keys []string) fuzzy.Matches {
	if strings.TrimSpace(query) == "" {
		matches := make(fuzzy.Matches, len(keys))
		for i, k := range keys {
			matches[i] = fuzzy.Match{Str: k, Index: i}
		}

		return matches
	}

	return fuzzy.Find(query, keys)
}

func (m model) render() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(hintStyle.Render(m.status()))
	b.WriteString("\n")

	if m.detail {
		b.WriteString(m.renderDetail())

		return b.String()
	}

	end := min(len(m.matches), m.offset+m.pageSize())

	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.matches[i], i == m.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

// status summarizes the match count and the available keys.
func (m model) status() string {
	if len(m.keys) == 0 {
		return "environment is empty (Esc to exit)"
	}

	pos := 0
	if len(m.matches) > 0 {
		pos = m.cursor + 1
	}

	return fmt.Sprintf("%d/%d of %d  Tab details  Enter select  Esc exit",
		pos, len(m.matches), len(m.keys))
}

// renderRow renders one KEY=VALUE row, truncated to the terminal width, with
// the characters matching the filter highlighted.
func (m model) renderRow(match fuzzy.Match, selected bool) string {
	prefix := "  "
	if selected {
		prefix = selectedMarker
	}

	row := prefix + highlight(match) + hintStyle.Render("=") +
		valueStyle.Render(m.env.Get(match.Str))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(row)
}

// renderDetail lists the path list entries of the selected value.
func (m model) renderDetail() string {
	key, ok := m.selected()
	if !ok {
		return ""
	}

	var b strings.Builder

	b.WriteString(keyStyle.Bold(true).Render(key))
	b.WriteString("\n")

	entries := m.platform.SplitList(m.env.Get(key))
	width := len(strconv.Itoa(len(entries)))

	for i, entry := range entries {
		num := fmt.Sprintf("%*d ", width, i+1)
		b.WriteString(hintStyle.Render(num))
		b.WriteString(entryStyle.Render(entry))
		b.WriteString("\n")
	}

	return b.String()
}

// highlight renders the key of match with its matched characters emphasized.
func highlight(match fuzzy.Match) string {
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(keyStyle.Render(string(r)))
		}
	}

	return b.String()
}
