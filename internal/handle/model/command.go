package model

// CommandOp is the kind of a mutation command.
type CommandOp string

var (
	// OpSetAdd adds a member to the set stored at a key.
	OpSetAdd CommandOp = "set_add"
	// OpSetRemove removes a member from the set stored at a key.
	OpSetRemove CommandOp = "set_remove"
	// OpAnyWriteWins overwrites the scalar stored at a key.
	OpAnyWriteWins CommandOp = "any_write_wins"
)

// Collection names the projection a command addresses.
type Collection string

var (
	CollectionHandleToAddress  Collection = "handle_to_address"
	CollectionAddressToHandles Collection = "address_to_handles"
)

// Command is an idempotent key-value mutation. Value holds the set member
// for set operations and the scalar for any-write-wins.
type Command struct {
	Op         CommandOp
	Collection Collection
	Prefix     string
	Key        string
	Value      string
}

// FullKey returns the key namespaced by the prefix, if any.
func (c Command) FullKey() string {
	if c.Prefix == "" {
		return c.Key
	}
	return c.Prefix + "." + c.Key
}

// SetAdd builds a command adding member to the set at key.
func SetAdd(collection Collection, prefix, key, member string) Command {
	return Command{Op: OpSetAdd, Collection: collection, Prefix: prefix, Key: key, Value: member}
}

// SetRemove builds a command removing member from the set at key.
func SetRemove(collection Collection, prefix, key, member string) Command {
	return Command{Op: OpSetRemove, Collection: collection, Prefix: prefix, Key: key, Value: member}
}

// AnyWriteWins builds a command overwriting the scalar at key.
func AnyWriteWins(collection Collection, prefix, key, value string) Command {
	return Command{Op: OpAnyWriteWins, Collection: collection, Prefix: prefix, Key: key, Value: value}
}

// Mutation is a command positioned in the mutation log.
type Mutation struct {
	Network     Network
	BlockHeight uint64
	Slot        uint64
	Seq         uint32
	Command     Command
}
