package ir

import (
	"fmt"
	"slices"
	"strconv"
)

// Container operations. Keys are always strings; when the container is
// an array the key is re-interpreted as a decimal index, and "-" marks
// the position one past the last element for Insert.

// Get returns the entry of container at key. For objects the key is a
// member name; for arrays it must parse as an index in [0, len).
func Get(container *Node, key string) (*Node, error) {
	switch container.Type {
	case ObjectType:
		v := container.Field(key)
		if v == nil {
			return nil, fmt.Errorf("%w: no member %q", ErrKey, key)
		}
		return v, nil
	case ArrayType:
		i, err := index(container, key, len(container.Values)-1)
		if err != nil {
			return nil, err
		}
		return container.Values[i], nil
	default:
		return nil, fmt.Errorf("%w: cannot index %s value", ErrKey, container.Type)
	}
}

// Insert places v into container at key. Object members are set,
// overwriting any previous value but keeping its position. Array keys
// must parse as an index in [0, len], shifting later elements right;
// the end marker "-" appends.
func Insert(container *Node, key string, v *Node) error {
	switch container.Type {
	case ObjectType:
		for i, k := range container.Keys {
			if k == key {
				container.Values[i] = v
				return nil
			}
		}
		container.Keys = append(container.Keys, key)
		container.Values = append(container.Values, v)
		return nil
	case ArrayType:
		if key == "-" {
			container.Values = append(container.Values, v)
			return nil
		}
		i, err := index(container, key, len(container.Values))
		if err != nil {
			return err
		}
		container.Values = slices.Insert(container.Values, i, v)
		return nil
	default:
		return fmt.Errorf("%w: cannot insert into %s value", ErrKey, container.Type)
	}
}

// Delete removes the entry of container at key. Array deletion shifts
// later elements left.
func Delete(container *Node, key string) error {
	switch container.Type {
	case ObjectType:
		for i, k := range container.Keys {
			if k == key {
				container.Keys = slices.Delete(container.Keys, i, i+1)
				container.Values = slices.Delete(container.Values, i, i+1)
				return nil
			}
		}
		return fmt.Errorf("%w: no member %q", ErrKey, key)
	case ArrayType:
		i, err := index(container, key, len(container.Values)-1)
		if err != nil {
			return err
		}
		container.Values = slices.Delete(container.Values, i, i+1)
		return nil
	default:
		return fmt.Errorf("%w: cannot delete from %s value", ErrKey, container.Type)
	}
}

func index(container *Node, key string, max int) (int, error) {
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: array index %q is not a number", ErrKey, key)
	}
	if i < 0 || i > max {
		return 0, fmt.Errorf("%w: index %d out of bounds (len %d)", ErrKey, i, len(container.Values))
	}
	return i, nil
}
