package common

import (
	"fmt"
	"strings"
	"unicode"
)

// FlipFEN mirrors the position vertically and swaps the colours, so the side
// to move keeps the same evaluation.
func FlipFEN(fen string) (string, error) {
	var normalized, err = NormalizeFEN(fen)
	if err != nil {
		return "", err
	}
	var fields = strings.Fields(normalized)

	var ranks = strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFen, fen)
	}
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))

	switch fields[1] {
	case "w":
		fields[1] = "b"
	case "b":
		fields[1] = "w"
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFen, fen)
	}

	if fields[2] != "-" {
		var castling = swapCase(fields[2])
		var sb strings.Builder
		for _, ch := range "KQkq" {
			if strings.ContainsRune(castling, ch) {
				sb.WriteRune(ch)
			}
		}
		fields[2] = sb.String()
	}

	if fields[3] != "-" {
		var sq = ParseSquare(fields[3])
		if sq == SquareNone {
			return "", fmt.Errorf("%w: %q", ErrInvalidFen, fen)
		}
		fields[3] = SquareName(FlipSquare(sq))
	}

	return strings.Join(fields, " "), nil
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}
