// Greedy block construction over the pending pool.

package sim

// ClearBlock fills one block discovered at discoveryTime: transactions
// leave the pool head-first while they still fit the remaining byte
// budget, and each cleared transaction's confirmation age is recorded in
// the histogram before its record returns to the free list. Returns the
// number of transactions cleared.
//
// This is first-fit in arrival order. Transactions are never reordered
// by fee or size, so it slightly underfills relative to a true packing.
func ClearBlock(pool *TxPool, hist *Histogram, capacityBytes int64, discoveryTime float64) int {
	cleared := 0
	space := capacityBytes
	for {
		t := pool.Peek()
		if t == nil || t.Size > space {
			break
		}
		space -= t.Size
		hist.Observe(discoveryTime - t.ArrivalTime)
		pool.RetireHead()
		cleared++
	}
	return cleared
}
