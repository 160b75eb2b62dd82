package report

import (
	"fmt"

	"github.com/Zuo-Peng/chat-recap/internal/catalog"
	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/observability"
	"github.com/Zuo-Peng/chat-recap/internal/stats"
)

// Source enumerates conversations and loads their message logs.
type Source interface {
	ListConversations() ([]chat.Conversation, error)
	LoadMessages(conversationID string) ([]chat.Message, error)
}

// ContactRank is one line of the most-messaged contacts ranking.
type ContactRank struct {
	Rank           int
	Participant    chat.Participant
	Count          int
	ConversationID string
}

type Report struct {
	Kind           Kind
	Title          string // contact or group name
	ConversationID string
	Contacts       []ContactRank // rank-contacts only
	Recap          stats.Recap   // analyze-* only
	Senders        map[string]chat.Participant
	Skipped        []error
}

// Controller answers requests against one archive snapshot.
type Controller struct {
	src Source
	cat *catalog.Catalog
}

// NewController scans src once and classifies its conversations.
func NewController(src Source) (*Controller, error) {
	convs, err := src.ListConversations()
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	cat, err := catalog.Open()
	if err != nil {
		return nil, err
	}
	if err := cat.Load(stats.Classify(convs)); err != nil {
		cat.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &Controller{src: src, cat: cat}, nil
}

func (c *Controller) Close() error {
	return c.cat.Close()
}

// Catalog exposes the classified conversations.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.cat
}

// Run executes a request.
func (c *Controller) Run(req Request) (*Report, error) {
	switch req.Kind {
	case KindRankContacts:
		return c.rankContacts(req.CurrentUser)
	case KindAnalyzeConversation:
		return c.analyzeConversation(req.ConversationID)
	case KindAnalyzeGroup:
		return c.analyzeGroup(req.ConversationID)
	default:
		return nil, fmt.Errorf("unknown request kind %q", req.Kind)
	}
}

func (c *Controller) rankContacts(user chat.Participant) (*Report, error) {
	dms, err := c.cat.DirectMessages()
	if err != nil {
		return nil, fmt.Errorf("list dms: %w", err)
	}

	rep := &Report{Kind: KindRankContacts}
	tallies := make([]stats.DMTally, 0, len(dms))
	for _, dm := range dms {
		msgs, err := c.src.LoadMessages(dm.ID)
		if err != nil {
			// the archive changed under us; skip like an unreadable folder
			observability.WithFields("conversation", dm.ID).Warn("skipping dm", "err", err)
			rep.Skipped = append(rep.Skipped, err)
			continue
		}
		tallies = append(tallies, stats.DMTally{
			ConversationID: dm.ID,
			Participants:   dm.Participants,
			MessageCount:   len(msgs),
		})
	}

	totals := stats.AggregateDMsBySender(tallies, user.ID())
	for _, skip := range totals.Skipped {
		observability.WithFields("conversation", skip.ConversationID).Warn("skipping dm", "err", skip)
		rep.Skipped = append(rep.Skipped, skip)
	}

	for i, e := range totals.Ranked() {
		rep.Contacts = append(rep.Contacts, ContactRank{
			Rank:           i + 1,
			Participant:    totals.Participants[e.Key],
			Count:          e.Count,
			ConversationID: totals.Conversations[e.Key],
		})
	}
	return rep, nil
}

func (c *Controller) analyzeConversation(id string) (*Report, error) {
	entry, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	msgs, err := c.src.LoadMessages(id)
	if err != nil {
		return nil, err
	}

	s := stats.AggregateDM(id, msgs)
	return &Report{
		Kind:           KindAnalyzeConversation,
		Title:          entry.DisplayName,
		ConversationID: id,
		Recap:          s.Recap(),
	}, nil
}

func (c *Controller) analyzeGroup(id string) (*Report, error) {
	entry, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	msgs, err := c.src.LoadMessages(id)
	if err != nil {
		return nil, err
	}

	s := stats.AggregateGroup(msgs)
	return &Report{
		Kind:           KindAnalyzeGroup,
		Title:          entry.DisplayName,
		ConversationID: id,
		Recap:          s.Recap(),
		Senders:        s.Senders,
	}, nil
}

func (c *Controller) lookup(id string) (*catalog.Entry, error) {
	entry, err := c.cat.Get(id)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", id, err)
	}
	if entry == nil {
		return nil, &chat.NotFoundError{ConversationID: id}
	}
	return entry, nil
}
