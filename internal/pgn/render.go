package pgn

import (
	"fmt"
	"strconv"

	"github.com/notnil/chess"
)

// Render writes r as PGN: Date, White, Black and Result tags, numbered SAN
// movetext and the result token. Every move is validated on replay.
func Render(r Record) (string, error) {
	var options []func(*chess.Game)
	if r.StartFen != "" {
		var fenOpt, err = chess.FEN(r.StartFen)
		if err != nil {
			return "", fmt.Errorf("render pgn: %w", err)
		}
		options = append(options, fenOpt)
	}
	var game = chess.NewGame(options...)

	for i, lan := range r.Moves {
		var move = findMove(game, lan)
		if move == nil {
			return "", fmt.Errorf("render pgn: illegal move %d %v in %v", i+1, lan, game.Position())
		}
		if err := game.Move(move); err != nil {
			return "", fmt.Errorf("render pgn: %w", err)
		}
	}

	var result = r.Result
	if result == "" {
		result = GameResultNone
	}
	// the replay may end the game on its own, e.g. by insufficient material
	var outcome = string(game.Outcome())
	if outcome != GameResultNone {
		if result == GameResultNone {
			result = outcome
		} else if result != outcome {
			return "", fmt.Errorf("render pgn: result %v but game ended %v", result, outcome)
		}
	}
	if !r.Date.IsZero() {
		game.AddTagPair("Date", r.Date.Format("2006.01.02"))
	}
	if r.Round != 0 {
		game.AddTagPair("Round", strconv.Itoa(r.Round))
	}
	game.AddTagPair("White", r.White)
	game.AddTagPair("Black", r.Black)
	game.AddTagPair("Result", result)
	for _, tag := range r.Tags {
		game.AddTagPair(tag.Key, tag.Value)
	}

	if game.Outcome() == chess.NoOutcome {
		switch result {
		case GameResultWhiteWin:
			game.Resign(chess.Black)
		case GameResultBlackWin:
			game.Resign(chess.White)
		case GameResultDraw:
			if err := game.Draw(chess.DrawOffer); err != nil {
				return "", fmt.Errorf("render pgn: %w", err)
			}
		}
	}
	return game.String(), nil
}

func findMove(game *chess.Game, lan string) *chess.Move {
	for _, m := range game.ValidMoves() {
		if m.String() == lan {
			return m
		}
	}
	return nil
}
