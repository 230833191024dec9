package material

import (
	"github.com/ChizhovVadim/chesscore/pkg/common"
)

// EvaluationService counts material only. Kings are not counted.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate is White-positive.
func (e *EvaluationService) Evaluate(b *common.Board) int {
	var eval = 0
	for sq := range b.Squares {
		var p = &b.Squares[sq]
		if p.IsEmpty() || p.Type == common.King {
			continue
		}
		if p.Color == common.White {
			eval += p.Value
		} else {
			eval -= p.Value
		}
	}
	return eval
}
