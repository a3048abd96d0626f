package serializer

import (
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"sort"
	"strings"
)

var log = logger.GetLogger("serializer")

const (
	NameGson      = "gson"       // gson compatible, HTML-safe escape table
	NameGsonPlain = "gson-plain" // gson compatible, default escape table
	NameJSONIter  = "jsoniter"   // json-iterator, encoding/json compatible
	NameStd       = "std"        // encoding/json
)

var factories = map[string]func() ISerializer{
	NameGson:      func() ISerializer { return NewGsonSerializer(true) },
	NameGsonPlain: func() ISerializer { return NewGsonSerializer(false) },
	NameJSONIter:  NewJSONIterSerializer,
	NameStd:       NewStdSerializer,
}

// NewSerializer creates the serializer registered under name (case-insensitive)
func NewSerializer(name string) (ISerializer, error) {
	factory, ok := factories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown serializer %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	s := factory()
	log.Debugf("created serializer %s", s.Name())
	return s, nil
}

// Names returns the names of all available serializers in sorted order
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
