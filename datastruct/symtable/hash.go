package symtable

const hashMultiplier = 65599

// Hash 将 key 映射到 [0, bucketCount) 中的桶下标，按字节累加并依赖 uint64 的溢出回绕
func Hash(key string, bucketCount int) int {
	if bucketCount < 1 {
		panic(ErrInvalidBucketCount)
	}
	var h uint64
	// 按字节而不是按 rune 计算
	for i := 0; i < len(key); i++ {
		h = h*hashMultiplier + uint64(key[i])
	}
	return int(h % uint64(bucketCount))
}
