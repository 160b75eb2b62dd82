package render

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/report"
	"github.com/Zuo-Peng/chat-recap/internal/stats"
	"github.com/mattn/go-runewidth"
)

const (
	colorReset  = "\033[0m"
	colorTitle  = "\033[1;34m" // bold blue
	colorRank   = "\033[1;32m" // bold green
	colorDim    = "\033[2m"
	colorAccent = "\033[1;33m" // bold yellow
)

type Options struct {
	Color bool
	Width int // truncate list entries to this many columns (0 = no limit)
}

type writer struct {
	b     strings.Builder
	color bool
}

func (w *writer) line(format string, args ...any) {
	w.b.WriteString(fmt.Sprintf(format, args...))
	w.b.WriteString("\n")
}

func (w *writer) paint(color, s string) string {
	if !w.color {
		return s
	}
	return color + s + colorReset
}

// ParticipantLabel renders "Name (email)".
func ParticipantLabel(p chat.Participant) string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Email)
}

// EmojiSlots formats the top emoji as "e (n times)", padded with empty slots
// up to stats.TopEmojiCount.
func EmojiSlots(top []stats.Entry) []string {
	slots := make([]string, 0, stats.TopEmojiCount)
	for _, e := range top {
		slots = append(slots, fmt.Sprintf("%s (%d times)", e.Key, e.Count))
	}
	for len(slots) < stats.TopEmojiCount {
		slots = append(slots, "")
	}
	return slots
}

// Contacts renders the most-messaged contacts ranking.
func Contacts(contacts []report.ContactRank, opts Options) string {
	w := &writer{color: opts.Color}
	w.line("")
	w.line("%s", w.paint(colorTitle, "Google Chat Recap - Most Messaged Contacts"))
	w.line("")

	if len(contacts) == 0 {
		w.line("%s", w.paint(colorDim, "(no direct messages)"))
		return w.b.String()
	}

	labels := make([]string, len(contacts))
	labelW := 0
	for i, c := range contacts {
		labels[i] = ParticipantLabel(c.Participant) + ":"
		if lw := runewidth.StringWidth(labels[i]); lw > labelW {
			labelW = lw
		}
	}
	rankW := len(fmt.Sprint(len(contacts))) + 1
	for i, c := range contacts {
		rank := runewidth.FillRight(fmt.Sprintf("%d.", c.Rank), rankW)
		w.line("%s %s %d messages", w.paint(colorRank, rank), runewidth.FillRight(labels[i], labelW), c.Count)
	}
	return w.b.String()
}

// Groups renders the numbered list of group conversations.
func Groups(groups []stats.Group, opts Options) string {
	w := &writer{color: opts.Color}
	w.line("")
	w.line("%s", w.paint(colorTitle, "Available Group Chats & Spaces:"))
	w.line("")

	if len(groups) == 0 {
		w.line("%s", w.paint(colorDim, "(no group conversations)"))
		return w.b.String()
	}
	for i, g := range groups {
		prefix := fmt.Sprintf("%d. ", i+1)
		name := g.DisplayName
		if opts.Width > 0 {
			name = runewidth.Truncate(name, opts.Width-runewidth.StringWidth(prefix), "...")
		}
		w.line("%s%s", w.paint(colorRank, prefix), name)
	}
	return w.b.String()
}

// Recap renders a DM or group recap.
func Recap(rep *report.Report, opts Options) string {
	w := &writer{color: opts.Color}
	r := rep.Recap

	w.line("")
	switch rep.Kind {
	case report.KindAnalyzeGroup:
		w.line("%s", w.paint(colorTitle, fmt.Sprintf("📊 Activity Recap for %s 📊", rep.Title)))
		w.line("")
		for i, e := range r.Ranked {
			label := e.Key
			if p, ok := rep.Senders[e.Key]; ok {
				label = ParticipantLabel(p)
			}
			w.line("%s %s: %d messages", w.paint(colorRank, fmt.Sprintf("%d.", i+1)), label, e.Count)
		}
		w.line("")
	default:
		w.line("%s", w.paint(colorTitle, fmt.Sprintf("📊 DM Recap with %s 📊", rep.Title)))
		w.line("")
		w.line("Total Messages Exchanged: %s", w.paint(colorAccent, fmt.Sprint(r.MessageCount)))
	}

	w.line("Most Common Word: %s (%d times)", w.paint(colorAccent, r.MostCommonWord.Key), r.MostCommonWord.Count)
	w.line("Top 3 Emojis Used: %s", strings.Join(EmojiSlots(r.TopEmojis), ", "))
	return w.b.String()
}
