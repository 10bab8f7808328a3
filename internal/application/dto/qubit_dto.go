package dto

import "github.com/revanthkumar92/quantara/internal/domain/entity"

// QubitDTO is the wire representation of a qubit record.
type QubitDTO struct {
	ID        int     `json:"id"`
	State     string  `json:"state"`
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase"`
}

// QubitListResponse is the envelope returned by GET /api/qubits.
type QubitListResponse struct {
	Results []QubitDTO `json:"results"`
}

// FromQubitEntity maps a domain qubit to its wire form.
func FromQubitEntity(q *entity.Qubit) QubitDTO {
	return QubitDTO{
		ID:        q.ID(),
		State:     q.State(),
		Amplitude: q.Amplitude(),
		Phase:     q.Phase(),
	}
}

// FromQubitEntities maps a slice of qubits preserving order.
func FromQubitEntities(qubits []*entity.Qubit) *QubitListResponse {
	results := make([]QubitDTO, 0, len(qubits))
	for _, q := range qubits {
		results = append(results, FromQubitEntity(q))
	}
	return &QubitListResponse{Results: results}
}
