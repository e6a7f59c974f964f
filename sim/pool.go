// Implements the TxPool, which holds all transactions waiting to be
// cleared into a block, plus the free-list allocator that recycles
// retired records.

package sim

// Tx is one pending transfer awaiting inclusion in a block.
type Tx struct {
	Size        int64   // byte footprint, constant in this model
	Fee         float64 // carried for future extension, unused by clearing
	ArrivalTime float64 // simulated seconds at which the transfer arrived
}

// TxPool holds pending transactions in arrival order, oldest first.
// Arrivals are generated in increasing time order, so insertion order is
// arrival order and the sequence is never reordered. Retired records go
// onto a free list and are reused in place, keeping steady-state
// simulation off the heap.
//
// A record is owned by the pending queue, or by the free list, or not yet
// allocated. Never two of those at once.
type TxPool struct {
	pending []*Tx // FIFO; live region is pending[head:]
	head    int
	free    []*Tx

	// NextArrival is the timestamp of the next not-yet-admitted arrival.
	// It persists across blocks within a run and resets only per run.
	NextArrival float64

	txSize    int64
	txFee     float64
	allocated int
}

// NewTxPool returns an empty pool stamping every admitted transaction
// with the given size and fee.
func NewTxPool(txSize int64, txFee float64) *TxPool {
	return &TxPool{txSize: txSize, txFee: txFee}
}

// Len returns the number of pending transactions.
func (p *TxPool) Len() int {
	return len(p.pending) - p.head
}

// FreeLen returns the number of retired records awaiting reuse.
func (p *TxPool) FreeLen() int {
	return len(p.free)
}

// Allocated returns how many records were ever constructed.
func (p *TxPool) Allocated() int {
	return p.allocated
}

// Peek returns the oldest pending transaction without removing it.
// Returns nil if the pool is empty.
func (p *TxPool) Peek() *Tx {
	if p.head >= len(p.pending) {
		return nil
	}
	return p.pending[p.head]
}

// Admit appends a transaction arriving at the given time, reusing a
// retired record when one is available.
func (p *TxPool) Admit(arrivalTime float64) *Tx {
	t := p.acquire()
	t.Size = p.txSize
	t.Fee = p.txFee
	t.ArrivalTime = arrivalTime
	p.pending = append(p.pending, t)
	return t
}

func (p *TxPool) acquire() *Tx {
	if n := len(p.free); n > 0 {
		t := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return t
	}
	p.allocated++
	return &Tx{}
}

// RetireHead removes the oldest pending transaction and hands its record
// back to the free list. No-op on an empty pool.
func (p *TxPool) RetireHead() {
	t := p.Peek()
	if t == nil {
		return
	}
	p.pending[p.head] = nil
	p.head++
	p.free = append(p.free, t)
	p.compact()
}

// compact reclaims the dead prefix once it dominates the backing slice.
func (p *TxPool) compact() {
	if p.head < 64 || p.head*2 < len(p.pending) {
		return
	}
	n := copy(p.pending, p.pending[p.head:])
	clear(p.pending[n:])
	p.pending = p.pending[:n]
	p.head = 0
}

// GenerateArrivals admits every transaction whose arrival timestamp falls
// at or before until, drawing successive inter-arrival gaps at the given
// rate, and returns how many were admitted. The first timestamp past
// until stays in NextArrival for the next call rather than being thrown
// away. A non-positive rate admits nothing.
func (p *TxPool) GenerateArrivals(until float64, rate float64, sampler *IntervalSampler) int {
	if rate <= 0 {
		return 0
	}
	admitted := 0
	for p.NextArrival <= until {
		p.Admit(p.NextArrival)
		admitted++
		p.NextArrival += sampler.Sample(rate)
	}
	return admitted
}

// Drain discards everything still pending at the end of a run and returns
// the discarded count. Drained records do NOT rejoin the free list: only
// within-run clearing feeds it.
func (p *TxPool) Drain() int {
	n := p.Len()
	clear(p.pending)
	p.pending = p.pending[:0]
	p.head = 0
	return n
}

// Reset prepares the pool for the next run: pending transactions are
// discarded and the arrival clock returns to zero.
func (p *TxPool) Reset() int {
	n := p.Drain()
	p.NextArrival = 0
	return n
}
