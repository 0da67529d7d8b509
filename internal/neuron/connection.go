package neuron

// Connection is a weighted edge from a neuron to one neuron of the next layer.
//
// DeltaWeight holds the last update applied to Weight and feeds the momentum
// term of the next update.
type Connection struct {
	Weight      float64
	DeltaWeight float64
}

// ConnectionRecord is the persisted form of a Connection.
type ConnectionRecord struct {
	Weight      float64 `json:"weight"`
	DeltaWeight float64 `json:"deltaWeight"`
}

func (c Connection) record() ConnectionRecord {
	return ConnectionRecord{Weight: c.Weight, DeltaWeight: c.DeltaWeight}
}

func connectionFromRecord(rec ConnectionRecord) Connection {
	return Connection{Weight: rec.Weight, DeltaWeight: rec.DeltaWeight}
}
