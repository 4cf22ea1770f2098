package lanes

// ProcessBlocks walks n entries in vector-sized blocks: full is called with
// the offset of each whole block, then tail once with the offset and count
// of the remainder, if any.
//
//	lanes.ProcessBlocks[float32](len(data),
//	    func(offset int) {
//	        v := lanes.Load(data[offset:], lanes.Unaligned)
//	        lanes.Add(v, v).Store(out[offset:], lanes.Unaligned)
//	    },
//	    func(offset, count int) {
//	        k := lanes.TailMask[float32](count)
//	        v := lanes.LoadMasked(data[offset:], k)
//	        lanes.Add(v, v).StoreMasked(out[offset:], k)
//	    },
//	)
func ProcessBlocks[T Entries](n int, full func(offset int), tail func(offset, count int)) {
	width := LaneCount[T]()

	blocks := n / width
	for i := range blocks {
		full(i * width)
	}

	if rem := n % width; rem > 0 {
		tail(blocks*width, rem)
	}
}
