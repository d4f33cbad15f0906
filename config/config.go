package config

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"symtable/lib/logger"
)

// DefaultBucketCount 是链式符号表默认的桶数，取素数以减少聚集
const DefaultBucketCount = 509

type TableProperties struct {
	BucketCount  int    `cfg:"bucketcount"`
	PoolMaxTotal int    `cfg:"pool-maxtotal"`
	PoolMaxIdle  int    `cfg:"pool-maxidle"`
	LogLevel     string `cfg:"loglevel"`
}

var Properties *TableProperties

func init() {
	Properties = defaults()
}

func defaults() *TableProperties {
	return &TableProperties{
		BucketCount:  DefaultBucketCount,
		PoolMaxTotal: 16,
		PoolMaxIdle:  8,
		LogLevel:     "INFO",
	}
}

// SetupConfigProperties 从文件读取配置并替换 Properties
func SetupConfigProperties(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "open config %s", filename)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	p, err := Parse(file)
	if err != nil {
		return err
	}
	if err := logger.Setup(p.LogLevel); err != nil {
		return err
	}
	Properties = p
	logger.Infof("loaded %s: bucketcount=%d pool-maxtotal=%d pool-maxidle=%d",
		filename, p.BucketCount, p.PoolMaxTotal, p.PoolMaxIdle)
	return nil
}

// Parse 解析 "key value" 形式的配置，未出现的项保持默认值
func Parse(reader io.Reader) (*TableProperties, error) {
	res := defaults()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.Trim(line[pivot+1:], " ")
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := fillProperties(res, m); err != nil {
		return nil, err
	}
	if res.BucketCount < 1 {
		return nil, errors.Errorf("bucketcount must be positive, got %d", res.BucketCount)
	}
	if !validPoolSize(res.PoolMaxTotal) {
		return nil, errors.Errorf("pool-maxtotal must be positive or -1, got %d", res.PoolMaxTotal)
	}
	if !validPoolSize(res.PoolMaxIdle) {
		return nil, errors.Errorf("pool-maxidle must be positive or -1, got %d", res.PoolMaxIdle)
	}
	return res, nil
}

// -1 表示不限
func validPoolSize(n int) bool {
	return n > 0 || n == -1
}

func fillProperties(p *TableProperties, m map[string]string) error {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "config %s", key)
			}
			fieldVal.SetInt(intV)
		}
	}
	return nil
}
