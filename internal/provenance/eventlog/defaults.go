package eventlog

// defaultMaxPages caps the non-unit part of a full-history read at 5000
// entries. UNIT entries are bounded separately by model.MaxUnitsPerBatch.
const defaultMaxPages = 50
