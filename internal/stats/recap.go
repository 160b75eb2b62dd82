package stats

// TopEmojiCount is how many emoji a recap lists.
const TopEmojiCount = 3

// NoWord is reported as the most common word when a conversation has none.
var NoWord = Entry{Key: "N/A", Count: 0}

type Recap struct {
	MessageCount   int
	Ranked         []Entry // per-sender or per-contact leaderboard, may be empty
	MostCommonWord Entry
	TopEmojis      []Entry // at most TopEmojiCount, highest first
}

// BuildRecap picks the most common word and the top emoji.
func BuildRecap(messageCount int, words, emoji *Tally) Recap {
	r := Recap{
		MessageCount:   messageCount,
		MostCommonWord: NoWord,
		TopEmojis:      TopN(emoji, TopEmojiCount),
	}
	if top := TopN(words, 1); len(top) == 1 {
		r.MostCommonWord = top[0]
	}
	return r
}

// Recap builds the recap of a single conversation.
func (s ConversationStats) Recap() Recap {
	return BuildRecap(s.Count, s.Words, s.Emoji)
}

// Recap builds the group recap, including the per-sender leaderboard.
func (s GroupStats) Recap() Recap {
	r := BuildRecap(s.Count, s.Words, s.Emoji)
	r.Ranked = Rank(s.PerSender)
	return r
}
