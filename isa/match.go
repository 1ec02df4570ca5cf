// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Operand is a source token resolved to the slot that encodes it.
type Operand struct {
	Token string
	Spec  OperandSpec
}

// matcher walks an opcode's alternatives against the source operand tokens.
//
// Tokens are resolved one at a time against the current alternative. On a
// mismatch the next alternative is tried at the same token. If that
// alternative is one operand longer than the token list, the previous token
// is duplicated so that it fills two consecutive slots; this models the two
// operand shorthand of a three operand instruction.
type matcher struct {
	alts     []Alternative
	tokens   []string
	alt      int       // Index of the current alternative.
	tok      int       // Index of the current token.
	dup      int       // Index of the duplicated token, or -1.
	resolved []Operand // Slots resolved so far.
}

// want is the alternative length that the tokens can fill.
func (m *matcher) want() int {
	if m.dup < 0 {
		return len(m.tokens)
	}
	return len(m.tokens) + 1
}

// slots returns the slots of the current alternative filled by the current token.
func (m *matcher) slots() []int {
	switch {
	case m.dup < 0 || m.tok < m.dup:
		return []int{m.tok}
	case m.tok == m.dup:
		return []int{m.tok, m.tok + 1}
	default:
		return []int{m.tok + 1}
	}
}

// fits reports if the current token satisfies all of its slots.
func (m *matcher) fits() bool {
	alt := m.alts[m.alt]
	for _, slot := range m.slots() {
		if !alt[slot].Match(m.tokens[m.tok]) {
			return false
		}
	}
	return true
}

// accept resolves the current token and moves to the next.
func (m *matcher) accept() {
	alt := m.alts[m.alt]
	for _, slot := range m.slots() {
		m.resolved = append(m.resolved, Operand{Token: m.tokens[m.tok], Spec: alt[slot]})
	}
	m.tok++
}

// advance moves to the next alternative after a mismatch.
func (m *matcher) advance() (err error) {
	m.alt++
	if m.alt >= len(m.alts) {
		err = ErrNoMatch
		return
	}

	switch size := len(m.alts[m.alt]); {
	case size == m.want():
		// Retry the same token.
	case m.dup < 0 && m.tok > 0 && size == len(m.tokens)+1:
		m.tok--
		m.dup = m.tok
		m.resolved = m.resolved[:m.tok]
	default:
		err = ErrNoMatch
	}

	return
}

// Match selects the alternative encoding for the operand tokens, and returns
// each token paired with the slot it fills.
func (entry *Entry) Match(tokens []string) (operands []Operand, err error) {
	m := &matcher{
		alts:   entry.Alternatives,
		tokens: tokens,
		dup:    -1,
	}

	for m.alt < len(m.alts) && len(m.alts[m.alt]) != len(tokens) {
		m.alt++
	}

	if m.alt == len(m.alts) {
		// Implicit operand instruction.
		if len(m.alts) == 0 && len(tokens) == 0 {
			return
		}
		err = ErrNoMatch
		return
	}

	for m.tok < len(m.tokens) {
		if m.fits() {
			m.accept()
			continue
		}
		err = m.advance()
		if err != nil {
			return
		}
	}

	operands = m.resolved

	return
}
