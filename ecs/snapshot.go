package ecs

import (
	"io"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// StateTree is the transport-neutral capture of a store's entire state: a
// tree of mappings, sequences, and scalars that any persistence layer can
// carry. Component values appear in their serialized form, keyed by kind
// name and then by entity id rendered as a string.
//
// The allocator's free pool is deliberately absent: a restored store issues
// the same next fresh id as the source, but recycles destroyed ids in its
// own order.
type StateTree struct {
	NextID     int64                     `json:"next_id"`
	Components map[string]map[string]any `json:"components"`
	Resources  map[string]any            `json:"resources,omitempty"`
}

// WriteJSON streams the tree as JSON. File handling stays with the caller.
func (t *StateTree) WriteJSON(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(t); err != nil {
		return eris.Wrap(err, "encode state tree")
	}
	return nil
}

// ReadStateTree decodes a JSON state tree from r.
func ReadStateTree(r io.Reader) (*StateTree, error) {
	tree := new(StateTree)
	if err := json.NewDecoder(r).Decode(tree); err != nil {
		return nil, eris.Wrap(ErrDeserialization, err.Error())
	}
	return tree, nil
}

type serializerFuncs struct {
	toTree   func(component any) (any, error)
	fromTree func(tree any) (any, error)
}

// SnapshotCodec converts store state to and from a StateTree. Codecs are
// explicit values rather than process-wide registrations: build one per
// world next to its ComponentRegistry and pass it wherever snapshots are
// taken or loaded.
//
// Kinds without a registered serializer use a structural default that
// encodes all named fields recursively, with scalars passing through
// unchanged. Kinds that are neither registered nor structurally
// decomposable fail with ErrSerialization.
type SnapshotCodec struct {
	registry    *ComponentRegistry
	serializers map[reflect.Type]serializerFuncs
}

// NewSnapshotCodec creates a codec bound to a component registry. The
// registry supplies the kind-name index used on the wire.
func NewSnapshotCodec(registry *ComponentRegistry) *SnapshotCodec {
	return &SnapshotCodec{
		registry:    registry,
		serializers: make(map[reflect.Type]serializerFuncs),
	}
}

// Register installs a serializer pair for a kind. The last registration for
// a kind wins. toTree receives the component value (not a pointer) and
// returns its tree form; fromTree inverts it. Register before the first
// snapshot or load that touches the kind.
func (c *SnapshotCodec) Register(kind reflect.Type, toTree func(any) (any, error), fromTree func(any) (any, error)) {
	c.serializers[kind] = serializerFuncs{toTree: toTree, fromTree: fromTree}
}

// RegisterSerializer is the typed form of SnapshotCodec.Register.
func RegisterSerializer[T any](c *SnapshotCodec, toTree func(T) (any, error), fromTree func(any) (T, error)) {
	c.Register(KindOf[T](),
		func(component any) (any, error) {
			return toTree(component.(T))
		},
		func(tree any) (any, error) {
			return fromTree(tree)
		},
	)
}

// Snapshot captures the store's full state: the allocator's next fresh id
// and, for every populated kind, the serialized form of each entity's
// component. An encoding failure aborts the whole snapshot.
func (c *SnapshotCodec) Snapshot(store *Store) (*StateTree, error) {
	tree := &StateTree{
		NextID:     int64(store.alloc.nextID),
		Components: make(map[string]map[string]any),
	}

	for _, kind := range store.Kinds() {
		table, _ := store.table(kind)
		if table.Len() == 0 {
			continue
		}
		name := c.registry.KindName(kind)
		entries := make(map[string]any, table.Len())
		for id, component := range table.All() {
			encoded, err := c.encodeComponent(kind, component)
			if err != nil {
				return nil, eris.Wrapf(err, "kind %s, entity %d", name, id)
			}
			entries[strconv.FormatInt(int64(id), 10)] = encoded
		}
		tree.Components[name] = entries
	}
	return tree, nil
}

// LoadIntoStore replaces the store's state with the tree's. The load stages
// every table first and swaps them in only after the whole tree has
// decoded, so a failed load leaves the target store untouched. Every kind
// named by the tree must be resolvable through the codec's registry.
func (c *SnapshotCodec) LoadIntoStore(tree *StateTree, store *Store) error {
	staged := make(map[reflect.Type]kindTable, len(tree.Components))

	for name, entries := range tree.Components {
		kind, ok := c.registry.KindByName(name)
		if !ok {
			return eris.Wrapf(ErrDeserialization, "unknown kind name %q", name)
		}
		table := store.newTable(kind)
		for idKey, serialized := range entries {
			id, err := strconv.ParseInt(idKey, 10, 64)
			if err != nil {
				return eris.Wrapf(ErrDeserialization, "kind %s: bad entity id %q", name, idKey)
			}
			component, err := c.decodeComponent(kind, serialized)
			if err != nil {
				return eris.Wrapf(err, "kind %s, entity %d", name, id)
			}
			table.Put(EntityId(id), component)
		}
		staged[kind] = table
	}

	store.replaceState(EntityId(tree.NextID), staged)
	return nil
}

func (c *SnapshotCodec) encodeComponent(kind reflect.Type, component any) (any, error) {
	value := component
	if v := reflect.ValueOf(component); v.Kind() == reflect.Ptr {
		value = v.Elem().Interface()
	}

	if ser, ok := c.serializers[kind]; ok {
		return ser.toTree(value)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, eris.Wrap(ErrSerialization, err.Error())
	}
	var encoded any
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, eris.Wrap(ErrSerialization, err.Error())
	}
	return encoded, nil
}

func (c *SnapshotCodec) decodeComponent(kind reflect.Type, tree any) (any, error) {
	if ser, ok := c.serializers[kind]; ok {
		component, err := ser.fromTree(tree)
		if err != nil {
			return nil, err
		}
		return normalize(component), nil
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return nil, eris.Wrap(ErrDeserialization, err.Error())
	}
	ptr := reflect.New(kind)
	if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
		return nil, eris.Wrap(ErrDeserialization, err.Error())
	}
	return ptr.Interface(), nil
}
