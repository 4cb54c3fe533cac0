package ucadata

// init assembles the package-level tries and tables from the hand-authored
// seed data in entries.go, using the same compressed-trie and
// open-addressing-hash layouts LookupCompData, LookupSimpleMapping and
// HashFind walk. A real table generator would run this same block-dedup
// construction over the full UCD/CLDR root instead of the small seed set.
func init() {
	compByCP := make(map[uint32]compEntry, len(compSeed))
	for _, e := range compSeed {
		compByCP[e.cp] = e
	}

	getComp := func(cp uint32) CompRecord {
		e, ok := compByCP[cp]
		if !ok {
			return CompRecord{}
		}
		if len(e.decomp) == 0 {
			return CompRecord{CCC: e.ccc}
		}
		idx := uint16(len(DecompData))
		DecompData = append(DecompData, e.decomp...)
		return CompRecord{DecompLen: uint8(len(e.decomp)), DecompIdx: idx}
	}
	compStage2, compStage1, compData = buildTrie(getComp, LastAssignedComp+1)

	simpleByCP := make(map[uint32]uint16, len(ceaSimpleSeed))
	for _, e := range ceaSimpleSeed {
		simpleByCP[e.cp] = e.l1
	}
	explicitByCP := make(map[uint32][]ceaWeights, len(ceaExplicitSeed))
	for _, e := range ceaExplicitSeed {
		explicitByCP[e.cp] = e.weights
	}

	getCea := func(cp uint32) CEAIndex {
		if l1, ok := simpleByCP[cp]; ok {
			offset := uint32(len(CeaData))
			CeaData = append(CeaData, l1)
			return PackSimpleL1(offset, 1)
		}
		if weights, ok := explicitByCP[cp]; ok {
			offset := uint32(len(CeaData))
			for _, w := range weights {
				CeaData = append(CeaData, w.l1, w.l2, w.l3)
			}
			return PackExplicit(offset, uint32(len(weights)))
		}
		return ceaIndexImplicit
	}
	ceaStage2, ceaStage1, ceaIndices = buildTrie(getCea, LastAssignedCea+1)

	buildContractions()
}

// buildTrie constructs a 3-array compressed trie over [0, domain) by
// deduplicating identical trieBlock-sized runs of get(cp) into data, then
// deduplicating identical trieGroup-sized runs of block offsets into
// stage1. domain must be a multiple of trieBlock*trieGroup.
func buildTrie[T comparable](get func(cp uint32) T, domain uint32) (stage2, stage1 []uint32, data []T) {
	blockCount := domain / trieBlock
	blockOffset := make([]uint32, blockCount)
	dataBlockOffset := make(map[[trieBlock]T]uint32)

	for b := uint32(0); b < blockCount; b++ {
		var blk [trieBlock]T
		for j := uint32(0); j < trieBlock; j++ {
			blk[j] = get(b*trieBlock + j)
		}
		off, ok := dataBlockOffset[blk]
		if !ok {
			off = uint32(len(data))
			data = append(data, blk[:]...)
			dataBlockOffset[blk] = off
		}
		blockOffset[b] = off
	}

	groupCount := blockCount / trieGroup
	stage1GroupOffset := make(map[[trieGroup]uint32]uint32)
	stage2 = make([]uint32, groupCount)

	for g := uint32(0); g < groupCount; g++ {
		var grp [trieGroup]uint32
		for j := uint32(0); j < trieGroup; j++ {
			grp[j] = blockOffset[g*trieGroup+j]
		}
		off, ok := stage1GroupOffset[grp]
		if !ok {
			off = uint32(len(stage1))
			stage1 = append(stage1, grp[:]...)
			stage1GroupOffset[grp] = off
		}
		stage2[g] = off
	}

	return stage2, stage1, data
}

// buildContractions assembles the root contraction bucket table and its
// one continuation sub-table from contractionSeed. Both tables are sized
// larger than their single occupied entry so HashFind exercises a real
// modulo-indexed lookup rather than a degenerate one-bucket table.
func buildContractions() {
	const rootSize = 4
	const contSize = 2

	weights := contractionSeed.w
	contOffset := uint32(len(CeaData))
	CeaData = append(CeaData, weights.l1, weights.l2, weights.l3)
	contValue := uint32(PackExplicit(contOffset, 1))

	root := make([]Bucket, rootSize)
	for i := range root {
		root[i] = Bucket{Key: EmptyKey}
	}
	cont := make([]Bucket, contSize)
	for i := range cont {
		cont[i] = Bucket{Key: EmptyKey}
	}

	contIdx := uint32(rootSize)
	rootIdx := contractionSeed.root % rootSize
	root[rootIdx] = Bucket{
		Key:       contractionSeed.root,
		ContCount: contSize,
		ContIdx:   contIdx,
		Value:     uint32(ceaIndexImplicit),
	}

	contIdxLocal := contractionSeed.cont % contSize
	cont[contIdxLocal] = Bucket{
		Key:   contractionSeed.cont,
		Value: contValue,
	}

	Contractions = append(root, cont...)
	ContractionsRootSize = rootSize
}
