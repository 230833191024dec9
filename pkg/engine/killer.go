package engine

const maxKillerDepth = MaxDepth + 2

// killerTable remembers up to two cutoff moves per remaining depth and one
// for quiescence. Each depth overwrites its two slots in turn.
type killerTable struct {
	slots      [2][maxKillerDepth]MoveCandidate
	next       [maxKillerDepth]int
	quiescence MoveCandidate
}

func newKillerTable() *killerTable {
	var k = &killerTable{}
	k.reset()
	return k
}

func (k *killerTable) reset() {
	for i := range k.slots {
		for j := range k.slots[i] {
			k.slots[i][j] = emptyCandidate
		}
	}
	for i := range k.next {
		k.next[i] = 0
	}
	k.quiescence = emptyCandidate
}

func (k *killerTable) record(depth int, m MoveCandidate) {
	if depth < 0 || depth >= maxKillerDepth {
		return
	}
	k.slots[k.next[depth]][depth] = MoveCandidate{From: m.From, To: m.To}
	k.next[depth] ^= 1
}

func (k *killerTable) lookup(depth int) (MoveCandidate, MoveCandidate) {
	if depth < 0 || depth >= maxKillerDepth {
		return emptyCandidate, emptyCandidate
	}
	return k.slots[0][depth], k.slots[1][depth]
}

func (k *killerTable) recordQuiescence(m MoveCandidate) {
	k.quiescence = MoveCandidate{From: m.From, To: m.To}
}

func (k *killerTable) isKiller(depth int, m MoveCandidate) bool {
	var k1, k2 = k.lookup(depth)
	return m.sameMove(k1) || m.sameMove(k2)
}
