/*
Package gendb is the runtime support library for schema-generated data
bindings: a binary wire codec, a compact delimited text codec for flat
value types, and indexed in-memory row containers.

Code generated from a schema definition calls into this package to
encode and decode itself and to store rows with primary-key, unique and
foreign-key lookup semantics:

1. Wire codec: Writer and Reader are byte cursors implementing the fixed
binary layout shared bit-for-bit by every language binding of the same
schema.

2. Pack codec: Pack, Unpack and TryUnpack render flat all-scalar value
types to and from a single delimited string ("100.5;200.3").

3. Store: an append-only collection of rows of one generated type, with
stable row pointers.

4. UniqueIndex and GroupIndex: key-to-row and key-to-rows maps populated
by generated container code on every added row.

5. Table: the composition of one Store with the indexes declared for its
schema table, keeping add and clear in lockstep.

Loading helpers (CSV, JSON files, bbolt snapshots) sit beside the core;
once a value is parsed, it enters a Table exactly as any other row.

# Wire format

All multi-byte integers and float bit patterns are little-endian.

**Primitives**: u8/i8 are one byte; u16/i16, u32/i32, u64/i64 are 2, 4
and 8 bytes; f32/f64 are the raw IEEE-754 bit patterns in 4 and 8 bytes;
bool is one byte, 0 or 1 written, any nonzero read as true.

**string**: u32 byte length, then that many raw bytes. The payload is
treated as opaque bytes of declared length; UTF-8 validity is the
producer's concern, not the codec's.

**bytes**: u32 length, then raw bytes.

**optional<T>**: u8 presence flag (0 or 1), then T iff present.

**sequence<T>**: u32 element count, then the concatenated T encodings.

**enum**: the i32 discriminant value.

The format is not self-describing: reader and writer must agree on the
exact sequence of fields, which the schema generator guarantees by
emitting reads and writes in declared field order.

# Pack format

A pack-annotated value type renders as its fields in declared order,
joined by the type's single delimiter character: "255|255|255|128".
Numbers use plain locale-independent decimal ('.' decimal point, no
grouping); floats use the shortest form that round-trips. The delimiter
is never escaped, so field values must not contain it.

# Concurrency

Every operation is synchronous and non-blocking, and the package does no
locking. A Store and its indexes assume a single writer; concurrent
readers are safe only while no writer is mutating the same container.
Callers that share containers across goroutines must serialize access
themselves.
*/
package gendb
