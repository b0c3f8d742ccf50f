package common

import "strings"

const SquareNone = -1

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

// Squares are numbered a1=0 .. h8=63, the same layout chess.Square uses.

func FlipSquare(sq int) int {
	return sq ^ 56
}

func SquareName(sq int) string {
	if sq == SquareNone {
		return "-"
	}
	var file = fileNames[sq&7]
	var rank = rankNames[sq>>3]
	return string(file) + string(rank)
}

func ParseSquare(s string) int {
	if len(s) != 2 {
		return SquareNone
	}
	var file = strings.IndexByte(fileNames, s[0])
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return SquareNone
	}
	return rank<<3 | file
}
