package wordtree

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes the node as nested objects, keys in insertion order.
// A leaf encodes as {}.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON encodes the whole tree keyed by root word.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return t.root.MarshalJSON()
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	buf.WriteByte('{')
	for i, w := range n.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(w)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeJSON(buf, n.children[w]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}
