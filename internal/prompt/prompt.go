// Package prompt builds the instruction sent to the language model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/csheth/heartsync/internal/i18n"
)

// CardCount is the number of cards requested per generation.
const CardCount = 10

// Field names every card record must carry in the model's JSON output.
const (
	FieldQuestionCN = "question_cn"
	FieldQuestionEN = "question_en"
	FieldWhy        = "why"
	FieldProTip     = "proTip"
)

// Fields lists the record fields in the order they are requested.
var Fields = []string{FieldQuestionCN, FieldQuestionEN, FieldWhy, FieldProTip}

// Build returns the instruction for the given scene. It is written in the
// active language and has no other inputs.
func Build(description string, lang i18n.Language) string {
	description = strings.TrimSpace(description)
	fields := strings.Join(Fields, ", ")
	if lang == i18n.English {
		return fmt.Sprintf(
			"You are a conversation expert. Based on: %q, generate %d deep conversation cards JSON array. "+
				"Objects: %s. Use sentence case for all English text. NO italics.",
			description, CardCount, fields,
		)
	}
	return fmt.Sprintf(
		"你是一位对话引导专家。根据情境： %q 生成 %d 张深度卡牌 JSON 数组，含 %s。禁止斜体。英文内容统一 Sentence case。",
		description, CardCount, fields,
	)
}
