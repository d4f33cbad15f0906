package utils

import "math/rand"

const alnum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// AlnumString 生成长度为 l 的随机字母数字串
func AlnumString(l int) string {
	a := make([]byte, l)
	for i := 0; i < l; i++ {
		a[i] = alnum[rand.Intn(len(alnum))]
	}
	return string(a)
}
