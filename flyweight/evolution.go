package flyweight

// Present implements the schema-evolution truncation rule of Invariant 5
// and §4.1's per-field presence guard: a field is present in the acting
// version only if the acting version is at least the field's since-version
// AND the field's bytes lie entirely within the acting block length.
//
// A generated getter calls this before reading; when it returns false the
// getter must return the field's NULL_VALUE instead of touching the
// buffer (P6/P7 evolution scenarios).
func Present(sinceVersion, actingVersion uint16, fieldOffset, fieldSize, actingBlockLength int) bool {
	if actingVersion < sinceVersion {
		return false
	}

	return fieldOffset+fieldSize <= actingBlockLength
}
