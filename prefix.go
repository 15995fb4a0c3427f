// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

import "strings"

// Prefix is the stack of indentation widths and bullets shared by every
// Block of a single Canvas. RegisterPrefix/RemoveLastPrefix push and pop
// one frame per nested block-level element; First/Rest compute the prefix
// text placed at the start of the current block's first and continuation
// lines.
type Prefix struct {
	paddings []int
	bullets  []string
	consumed bool
}

// NewPrefix returns an empty Prefix.
func NewPrefix() *Prefix {
	return &Prefix{}
}

// RegisterPrefix pushes one frame of indentation and an optional bullet.
func (p *Prefix) RegisterPrefix(paddingInline int, bullet string) {
	p.paddings = append(p.paddings, paddingInline)
	p.bullets = append(p.bullets, bullet)
}

// RemoveLastPrefix pops the most recently pushed frame.
func (p *Prefix) RemoveLastPrefix() {
	if len(p.paddings) == 0 {
		return
	}
	p.paddings = p.paddings[:len(p.paddings)-1]
	p.bullets = p.bullets[:len(p.bullets)-1]
}

// CurrentPadding is the sum of all pushed indentation widths.
func (p *Prefix) CurrentPadding() int {
	total := 0
	for _, n := range p.paddings {
		total += n
	}
	return total
}

// First returns the first-line prefix exactly once per consumption cycle:
// current_padding spaces with the rightmost non-empty bullet spliced into
// the tail end, e.g. "    * ". Once popped, a bullet's slot is cleared so it
// fires at most once; subsequent calls (until Restore is invoked by a new
// block) return "".
func (p *Prefix) First() string {
	if p.consumed {
		return ""
	}
	p.consumed = true

	padding := p.CurrentPadding()
	bullet := p.popBullet()
	if bullet == "" {
		return strings.Repeat(" ", padding)
	}
	return strings.Repeat(" ", padding-len([]rune(bullet))) + bullet
}

// Rest returns the continuation-line prefix: current_padding spaces, always.
func (p *Prefix) Rest() string {
	return strings.Repeat(" ", p.CurrentPadding())
}

// UnconsumedBullet returns the most recently pushed bullet if it has not
// yet been emitted by First, so that e.g. an empty <li></li> still renders
// its bullet when the block closes without ever receiving text.
func (p *Prefix) UnconsumedBullet() string {
	if len(p.bullets) == 0 {
		return ""
	}
	return p.bullets[len(p.bullets)-1]
}

// popBullet returns and clears the rightmost non-empty bullet in the stack.
func (p *Prefix) popBullet() string {
	for i := len(p.bullets) - 1; i >= 0; i-- {
		if p.bullets[i] != "" {
			b := p.bullets[i]
			p.bullets[i] = ""
			return b
		}
	}
	return ""
}

// Restore resets the consumed flag, allowing First to fire again for the
// next block. Block.NewBlock calls this whenever a Canvas starts a fresh Block.
func (p *Prefix) Restore() {
	p.consumed = false
}