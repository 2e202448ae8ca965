// Package skein implements the generic UBI streaming shell shared by all
// three Skein state sizes (256, 512 and 1024 bits). Front-door packages
// skein256, skein512 and skein1024 build on top of it.
package skein

const (
	// cfgConfig, cfgMessage and cfgOutput are the UBI block-type codes
	// this module uses. The Skein type space defines more (key,
	// personalization, public key, key ID, nonce) but this module only
	// implements ordinary hashing.
	cfgConfig  uint64 = 4
	cfgMessage uint64 = 48
	cfgOutput  uint64 = 63

	// firstBlock and finalBlock are the UBI first/final-block-of-type
	// flags, packed into the top two bits of T1.
	firstBlock uint64 = 1 << 62
	finalBlock uint64 = 1 << 63

	// bitPad marks a final message block whose trailing byte is only
	// partially filled by the message's bit length. It occupies the bit
	// immediately below the 6-bit type field (bits 56..61), so it can
	// never collide with a type code.
	bitPad uint64 = 1 << 55

	// schemaID is the published Skein schema identifier "SHA3" packed
	// little-endian, with the format version (1) in the next byte.
	schemaID uint64 = 0x133414853

	// cfgBlockBytes is the size of the CFG block Skein absorbs at
	// construction time: 8 bytes schema+version, 8 bytes output length
	// in bits, 16 bytes reserved (zero).
	cfgBlockBytes = 32
)
