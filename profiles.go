// Copyright 2026 Albert Weichselbraun <albert@weichselbraun.net>.
// All rights reserved.

package inscriptis

// Profile is a per-tag table of default HtmlElement records, looked up by
// tag name during the rendering walk. Tags absent from the table fall back
// to DefaultHtmlElement.
type Profile map[string]HtmlElement

func block(tag string) HtmlElement {
	e := DefaultHtmlElement()
	e.Tag = tag
	e.Display = DisplayBlock
	return e
}

// StrictProfile mirrors plain browser defaults for the tags inscriptis
// understands.
func StrictProfile() Profile {
	p := Profile{}

	for _, tag := range []string{"head", "link", "meta", "script", "style", "title"} {
		e := block(tag)
		e.Display = DisplayNone
		p[tag] = e
	}

	for _, tag := range []string{"p", "figure", "h1", "h2", "h3", "h4", "h5", "h6"} {
		e := block(tag)
		e.MarginBefore = 1
		e.MarginAfter = 1
		p[tag] = e
	}

	for _, tag := range []string{"ul", "ol"} {
		e := block(tag)
		e.PaddingInline = 4
		p[tag] = e
	}

	p["li"] = block("li")

	for _, tag := range []string{
		"address", "article", "aside", "div", "footer", "header", "hgroup",
		"layer", "main", "nav", "figcaption", "blockquote",
	} {
		p[tag] = block(tag)
	}

	q := DefaultHtmlElement()
	q.Tag = "q"
	q.Prefix = `"`
	q.Suffix = `"`
	p["q"] = q

	for _, tag := range []string{"pre", "xmp", "listing", "plaintext"} {
		e := block(tag)
		e.Whitespace = WhiteSpacePre
		p[tag] = e
	}

	return p
}

// RelaxedProfile extends StrictProfile with looser spacing suitable for
// downstream text mining: div gets a smaller indent and span becomes a
// padded inline element, which keeps adjacent <span>-delimited words from
// sticking together while still suppressing the padding inside pre blocks.
func RelaxedProfile() Profile {
	p := StrictProfile()

	div := block("div")
	div.PaddingInline = 2
	p["div"] = div

	span := DefaultHtmlElement()
	span.Tag = "span"
	span.Display = DisplayInline
	span.Prefix = " "
	span.Suffix = " "
	span.LimitWhitespaceAffixes = true
	p["span"] = span

	return p
}

// Get looks up tag in the profile, returning DefaultHtmlElement (with its
// Tag field set) if the tag has no entry.
func (p Profile) Get(tag string) HtmlElement {
	if e, ok := p[tag]; ok {
		return e.Clone()
	}
	e := DefaultHtmlElement()
	e.Tag = tag
	return e
}

// Clone returns a deep-enough copy of the profile so that annotation rules
// can extend per-tag Annotation slices without mutating a shared package
// level profile.
func (p Profile) Clone() Profile {
	clone := make(Profile, len(p))
	for tag, e := range p {
		clone[tag] = e.Clone()
	}
	return clone
}