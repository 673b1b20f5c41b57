package hbasemap

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/challenai/hbasemap/thrift/hbase"
	"github.com/iancoleman/strcase"
)

// columnDescriptors builds one descriptor per family, sorted by family name.
// Option names are translated to the store's lowerCamel names.
func columnDescriptors(families Families) ([]*hbase.ColumnDescriptor, error) {
	if len(families) == 0 {
		return nil, errors.New("no column families specified")
	}
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)

	descriptors := make([]*hbase.ColumnDescriptor, 0, len(names))
	for _, name := range names {
		if strings.TrimSuffix(name, familySeparator) == "" {
			return nil, errors.New("empty column family name")
		}
		d := hbase.NewColumnDescriptor()
		for option, value := range families[name] {
			if err := setFamilyOption(d, strcase.ToLowerCamel(option), value); err != nil {
				return nil, fmt.Errorf("family %s: %w", name, err)
			}
		}
		if !strings.HasSuffix(name, familySeparator) {
			name += familySeparator
		}
		d.Name = []byte(name)
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

func setFamilyOption(d *hbase.ColumnDescriptor, option string, value interface{}) error {
	var err error
	switch option {
	case "maxVersions":
		d.MaxVersions, err = int32Option(option, value)
	case "compression":
		d.Compression, err = stringOption(option, value)
	case "inMemory":
		d.InMemory, err = boolOption(option, value)
	case "bloomFilterType":
		d.BloomFilterType, err = stringOption(option, value)
	case "bloomFilterVectorSize":
		d.BloomFilterVectorSize, err = int32Option(option, value)
	case "bloomFilterNbHashes":
		d.BloomFilterNbHashes, err = int32Option(option, value)
	case "blockCacheEnabled":
		d.BlockCacheEnabled, err = boolOption(option, value)
	case "timeToLive":
		d.TimeToLive, err = int32Option(option, value)
	default:
		return fmt.Errorf("unknown option %q", option)
	}
	return err
}

func int32Option(option string, value interface{}) (int32, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int32:
		return v, nil
	case int64:
		n = v
	default:
		return 0, fmt.Errorf("option %s must be an integer, got %T", option, value)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("option %s out of range: %d", option, n)
	}
	return int32(n), nil
}

func stringOption(option string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("option %s must be a string, got %T", option, value)
	}
	return s, nil
}

func boolOption(option string, value interface{}) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("option %s must be a bool, got %T", option, value)
	}
	return b, nil
}
