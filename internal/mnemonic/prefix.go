package mnemonic

// PrefixIndex maps every 1- and 2-character prefix found in a word list to
// the index of the first word carrying it.
type PrefixIndex map[string]int

// BuildPrefixIndex derives the prefix index from a sorted word list.
func BuildPrefixIndex(words []string) PrefixIndex {
	idx := make(PrefixIndex, 26*16)
	for i, w := range words {
		for n := 1; n <= 2 && n <= len(w); n++ {
			if _, ok := idx[w[:n]]; !ok {
				idx[w[:n]] = i
			}
		}
	}
	return idx
}

// Start returns the index of the first word beginning with prefix.
func (p PrefixIndex) Start(prefix string) (int, bool) {
	i, ok := p[prefix]
	return i, ok
}
