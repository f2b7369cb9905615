package tags

import (
	"bytes"
	"github.com/viant/parsly"
	"strings"
)

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	var tokens = []*parsly.Token{scopeBlockMatcher}

	eqIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte("="))
	comaIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte(","))
	if eqIndex == -1 {
		tokens = append(tokens, comaTerminatorMatcher)
	} else if comaIndex == -1 {
		tokens = append(tokens, eqTerminatorMatcher)
	} else if eqIndex < comaIndex {
		tokens = append(tokens, eqTerminatorMatcher)
	} else {
		tokens = append(tokens, comaTerminatorMatcher)
	}

	match := cursor.MatchAfterOptional(whitespaceMatcher, tokens...)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	case eqTerminatorToken:
		key = match.Text(cursor)
		key = key[:len(key)-1]
		match = cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
		switch match.Code {
		case scopeBlockToken, quotedToken:
			value = unquote(match.Text(cursor))
			cursor.MatchAny(comaTerminatorMatcher)
		case comaTerminatorToken:
			value = match.Text(cursor)
			value = value[:len(value)-1]
		default:
			if cursor.Pos < len(cursor.Input) {
				value = string(cursor.Input[cursor.Pos:])
				cursor.Pos = len(cursor.Input)
			}
		}
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if key != "" {
		return strings.TrimSpace(key), strings.TrimSpace(value)
	}
	value = strings.TrimSpace(value)
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	} else {
		key = value
		value = ""
	}
	return strings.TrimSpace(key), strings.TrimSpace(value)
}

func unquote(text string) string {
	if len(text) >= 2 {
		switch text[0] {
		case '\'', '{':
			return text[1 : len(text)-1]
		}
	}
	return text
}
