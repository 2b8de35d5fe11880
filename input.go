package parsby

import "github.com/emirpasic/gods/stacks/arraystack"

// CharSource is any character-producing stream a BackedInput can wrap: a
// file, a network connection, or (via NewStringSource) a plain string.
type CharSource interface {
	// Read consumes up to n characters from the stream and returns them.
	// At EOF it returns fewer than n characters, possibly none.
	Read(n int) string
	// Unget pushes characters back onto the stream, to be read again by
	// a subsequent Read. Callers only ever unget a suffix of what they
	// most recently read.
	Unget(s string)
	// EOF reports whether no further character is available.
	EOF() bool
	// Pos reports the number of characters consumed from the stream so
	// far (net of any Unget).
	Pos() int
}

// stringSource is the CharSource backing NewStringSource: an in-memory
// rune slice with a cursor.
type stringSource struct {
	runes []rune
	pos   int
}

// NewStringSource wraps a plain Go string as a CharSource.
func NewStringSource(s string) CharSource {
	return &stringSource{runes: []rune(s)}
}

func (s *stringSource) Read(n int) string {
	if n <= 0 || s.pos >= len(s.runes) {
		return ""
	}
	end := s.pos + n
	if end > len(s.runes) {
		end = len(s.runes)
	}
	out := string(s.runes[s.pos:end])
	s.pos = end
	return out
}

func (s *stringSource) Unget(str string) {
	n := len([]rune(str))
	s.pos -= n
	if s.pos < 0 {
		s.pos = 0
	}
}

func (s *stringSource) EOF() bool { return s.pos >= len(s.runes) }
func (s *stringSource) Pos() int  { return s.pos }

// BackedInput gives a read-only CharSource the ability to backtrack
// within a scoped region: every character read since the enclosing
// checkpoint is recorded in a backup buffer, so the caller may restore
// the stream to any earlier position. See WithCheckpoint.
type BackedInput struct {
	source CharSource
	backup []rune
	// frames holds every enclosing checkpoint's backup buffer while a
	// nested one is active, innermost on top.
	frames *arraystack.Stack
}

// NewBackedInput wraps source for backtracking.
func NewBackedInput(source CharSource) *BackedInput {
	return &BackedInput{source: source, frames: arraystack.New()}
}

// Pos is the current absolute character offset.
func (b *BackedInput) Pos() int { return b.source.Pos() }

// EOF reports whether no further character is available.
func (b *BackedInput) EOF() bool { return b.source.EOF() }

// Read consumes up to n characters from the stream and records them in
// the active backup buffer.
func (b *BackedInput) Read(n int) string {
	s := b.source.Read(n)
	if s != "" {
		b.backup = append(b.backup, []rune(s)...)
	}
	return s
}

// Restore ungets every character in the active backup buffer, last-read
// first, then empties it. Position returns to its value at the start of
// the active checkpoint.
func (b *BackedInput) Restore() {
	for i := len(b.backup) - 1; i >= 0; i-- {
		b.source.Unget(string(b.backup[i]))
	}
	b.backup = b.backup[:0]
}

// Unget removes the trailing |s| characters from the backup buffer and
// pushes them back to the stream. Precondition: the last |s| characters
// of the backup equal s.
func (b *BackedInput) Unget(s string) {
	r := []rune(s)
	n := len(r)
	if n == 0 {
		return
	}
	if n > len(b.backup) || string(b.backup[len(b.backup)-n:]) != s {
		panic("parsby: Unget precondition violated: not a suffix of what was read")
	}
	b.backup = b.backup[:len(b.backup)-n]
	b.source.Unget(s)
}

// WithCheckpoint saves the current backup, installs a fresh one, and
// runs f. If f fails, the stream is restored to the checkpoint and the
// outer backup is left untouched; on success the inner backup is merged
// into the outer one, so an enclosing checkpoint can still roll back
// both. Nested checkpoints compose: an inner checkpoint only ever sees
// the characters it itself consumed.
func WithCheckpoint[T any](b *BackedInput, f func() (T, error)) (T, error) {
	b.frames.Push(b.backup)
	b.backup = nil
	val, err := f()
	raw, _ := b.frames.Pop()
	outer, _ := raw.([]rune)
	if err != nil {
		b.Restore()
		b.backup = outer
		return val, err
	}
	inner := b.backup
	b.backup = append(outer, inner...)
	return val, nil
}

// PeekCheckpoint runs f under a fresh checkpoint and always restores
// afterwards, regardless of whether f succeeded, leaving the stream
// exactly as it was.
func PeekCheckpoint[T any](b *BackedInput, f func() (T, error)) (T, error) {
	b.frames.Push(b.backup)
	b.backup = nil
	val, err := f()
	b.Restore()
	raw, _ := b.frames.Pop()
	b.backup, _ = raw.([]rune)
	return val, err
}
