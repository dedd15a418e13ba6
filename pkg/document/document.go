// Package document defines the immutable rich-text document model: blocks of
// styled text, link entities, a selection, and explicit undo/redo history.
//
// Values in this package are never mutated in place. Every operation returns
// a fresh value, so a State can be shared, compared, and stored on history
// stacks without defensive copying by callers.
package document

import "strings"

// Content is the full formatted document: an ordered sequence of blocks plus
// the entity table their entity ranges refer into.
type Content struct {
	Blocks   []Block
	Entities map[string]LinkEntity
}

// NewContent returns a document holding a single empty paragraph.
func NewContent() Content {
	return Content{Blocks: []Block{NewBlock()}}
}

// Clone returns a deep copy of the content.
func (c Content) Clone() Content {
	out := Content{}
	if len(c.Blocks) > 0 {
		out.Blocks = make([]Block, len(c.Blocks))
		for i, b := range c.Blocks {
			out.Blocks[i] = b.Clone()
		}
	}
	if len(c.Entities) > 0 {
		out.Entities = make(map[string]LinkEntity, len(c.Entities))
		for k, v := range c.Entities {
			out.Entities[k] = v
		}
	}
	return out
}

// BlockIndex returns the position of the block with the given key, or -1.
func (c Content) BlockIndex(key string) int {
	for i, b := range c.Blocks {
		if b.Key == key {
			return i
		}
	}
	return -1
}

// Block returns the block with the given key.
func (c Content) Block(key string) (Block, bool) {
	if i := c.BlockIndex(key); i >= 0 {
		return c.Blocks[i], true
	}
	return Block{}, false
}

// Entity returns the entity with the given key.
func (c Content) Entity(key string) (LinkEntity, bool) {
	e, ok := c.Entities[key]
	return e, ok
}

// PlainText returns the document text with blocks joined by newlines.
func (c Content) PlainText() string {
	parts := make([]string, len(c.Blocks))
	for i, b := range c.Blocks {
		parts[i] = b.Text
	}
	return strings.Join(parts, "\n")
}

// IsEmpty reports whether the document holds no text at all.
func (c Content) IsEmpty() bool {
	for _, b := range c.Blocks {
		if b.Text != "" {
			return false
		}
	}
	return true
}

// PruneEntities drops entity table rows no block references. Called after
// operations that remove entity ranges.
func (c Content) PruneEntities() Content {
	if len(c.Entities) == 0 {
		return c
	}
	referenced := make(map[string]bool)
	for _, b := range c.Blocks {
		for _, r := range b.Entities {
			referenced[r.Key] = true
		}
	}
	out := c.Clone()
	for k := range out.Entities {
		if !referenced[k] {
			delete(out.Entities, k)
		}
	}
	if len(out.Entities) == 0 {
		out.Entities = nil
	}
	return out
}

// SetEntity returns content with the entity stored under key.
func (c Content) SetEntity(key string, e LinkEntity) Content {
	out := c.Clone()
	if out.Entities == nil {
		out.Entities = make(map[string]LinkEntity, 1)
	}
	out.Entities[key] = e
	return out
}

// ReplaceBlock returns content with the block at index i replaced.
func (c Content) ReplaceBlock(i int, b Block) Content {
	out := c.Clone()
	out.Blocks[i] = b
	return out
}

// Snapshot is one entry on the history stacks: the content plus the
// selection it was captured with.
type Snapshot struct {
	Content   Content
	Selection Selection
}

// DefaultHistoryLimit bounds the undo stack when a State does not specify
// its own limit.
const DefaultHistoryLimit = 100

// State is the complete editor state: current content, selection, and the
// explicit undo/redo stacks. It is a value; commands return replacements.
type State struct {
	Content   Content
	Selection Selection

	// Undo holds prior snapshots, oldest first. Redo holds undone
	// snapshots. Both are consulted and replaced, never mutated.
	Undo []Snapshot
	Redo []Snapshot

	// HistoryLimit bounds len(Undo). Zero means DefaultHistoryLimit.
	HistoryLimit int
}

// NewState returns a state over the given content with a collapsed selection
// at the start of the first block.
func NewState(c Content) State {
	if len(c.Blocks) == 0 {
		c = NewContent()
	}
	key := c.Blocks[0].Key
	return State{
		Content:   c,
		Selection: CollapsedSelection(key, 0),
	}
}

// snapshot captures the current content and selection.
func (s State) snapshot() Snapshot {
	return Snapshot{Content: s.Content, Selection: s.Selection}
}

// historyLimit returns the effective undo bound.
func (s State) historyLimit() int {
	if s.HistoryLimit > 0 {
		return s.HistoryLimit
	}
	return DefaultHistoryLimit
}

// Commit returns a state holding the new content and selection, with the
// previous snapshot pushed onto the undo stack (oldest entries dropped past
// the history limit) and the redo stack cleared.
func (s State) Commit(c Content, sel Selection) State {
	undo := make([]Snapshot, len(s.Undo), len(s.Undo)+1)
	copy(undo, s.Undo)
	undo = append(undo, s.snapshot())
	if limit := s.historyLimit(); len(undo) > limit {
		undo = undo[len(undo)-limit:]
	}

	return State{
		Content:      c,
		Selection:    sel,
		Undo:         undo,
		Redo:         nil,
		HistoryLimit: s.HistoryLimit,
	}
}

// WithSelection returns a state with only the selection moved. Selection
// changes are not undoable and do not touch the history stacks.
func (s State) WithSelection(sel Selection) State {
	s.Selection = sel
	return s
}

// CanUndo reports whether an undo snapshot is available.
func (s State) CanUndo() bool { return len(s.Undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (s State) CanRedo() bool { return len(s.Redo) > 0 }
