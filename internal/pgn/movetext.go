package pgn

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ChizhovVadim/chesscore/pkg/common"
)

var (
	tagsRegex    = regexp.MustCompile(`\[[^\]]+\]`)
	tagPairRegex = regexp.MustCompile(`\[(.*)\s\"(.*)\"\]`)
)

type token struct {
	value   string
	comment string
}

// ParseMovetext replays the SAN moves of body from start. Move numbers,
// comments and the result token are skipped. On an illegal move it returns
// the items read so far together with the error.
func ParseMovetext(start common.Board, body string) ([]Item, error) {
	var curPosition = start
	var tokens = parseTokens(body)
	var items = make([]Item, 0, len(tokens))
	for _, tok := range tokens {
		if isResult(tok.value) {
			break
		}
		var move, ok = common.ParseMoveSAN(&curPosition, tok.value)
		if !ok {
			return items, fmt.Errorf("parse move failed %v in %v", tok.value, curPosition.Fen())
		}
		var child, legal = common.MakeLegalMove(&curPosition, move)
		if !legal {
			return items, fmt.Errorf("illegal move %v in %v", tok.value, curPosition.Fen())
		}
		items = append(items, Item{
			San:      tok.value,
			Comment:  tok.comment,
			Move:     move,
			Position: child,
		})
		curPosition = child
	}
	return items, nil
}

// ParseTags returns the tag pairs of a PGN game in order.
func ParseTags(pgn string) []Tag {
	var tags = make([]Tag, 0, 16)
	for _, match := range tagPairRegex.FindAllStringSubmatch(pgn, -1) {
		tags = append(tags, Tag{Key: match[1], Value: match[2]})
	}
	return tags
}

func TagValue(tags []Tag, key string) (string, bool) {
	for _, tag := range tags {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

func isResult(s string) bool {
	switch s {
	case GameResultNone, GameResultWhiteWin, GameResultBlackWin, GameResultDraw:
		return true
	}
	return false
}

func parseTokens(pgn string) []token {
	pgn = tagsRegex.ReplaceAllString(pgn, "")
	pgn = strings.ReplaceAll(pgn, "\n", " ")
	var result []token
	var inComment = false
	var body string
	for _, r := range pgn {
		if inComment {
			if r == '}' {
				if len(result) != 0 {
					result[len(result)-1].comment = body
				}
				inComment = false
				body = ""
			} else {
				body = body + string(r)
			}
		} else if r == '.' {
			body = ""
		} else if unicode.IsSpace(r) {
			if body != "" {
				result = append(result, token{value: body})
				body = ""
			}
		} else if r == '{' {
			if body != "" {
				result = append(result, token{value: body})
				body = ""
			}
			inComment = true
		} else {
			body = body + string(r)
		}
	}
	if body != "" {
		result = append(result, token{value: body})
	}
	return result
}
