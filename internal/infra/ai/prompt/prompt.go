package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shukatsu-tools/es-analyzer/internal/domain/ai"
)

// StructureUnknown sentinel when the scorer does not classify the structure.
const StructureUnknown = "不明"

const basePrompt = `あなたは就活生のエントリーシート（ES）を分析し、改善提案を行う専門家です。

以下の観点でESを分析してください：

1. **論理性スコア (0-100)**: 主張と根拠が明確に結びついているか、論理展開に飛躍がないか
2. **具体性スコア (0-100)**: 具体的な数字、固有名詞、エピソードが含まれているか
3. **読みやすさスコア (0-100)**: 文章の長さ、接続詞の使い方、一文一義が守られているか
4. **業界一貫性スコア (0-100)**: 企業・業界が指定されている場合、その特性と一貫性があるか
5. **文章構造**: PREP法、STAR法などの構造が使われているか
6. **改善ポイント**: 箇条書きで3〜5点の具体的な改善提案
7. **改善版ES**: 上記の分析に基づいた改善版の全文
`

const schemaDirective = `

必ずJSON形式で以下の構造で返してください：
{
  "logic_score": 85,
  "specificity_score": 70,
  "readability_score": 80,
  "consistency_score": 75,
  "structure_type": "PREP",
  "structure_evaluation": "PREP法の構造は守られているが...",
  "improvement_points": ["ポイント1", "ポイント2", "ポイント3"],
  "improved_content": "改善後のES全文"
}`

// GetSystemPrompt builds the system instruction block. The block is identical for
// every input except the industry appendix, appended only for known labels.
func GetSystemPrompt(industry string) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	if p, ok := ProfileFor(industry); ok {
		fmt.Fprintf(&b, `
## 【%s業界向け特別評価基準】

この業界では以下の点を特に重視します：

**重視されるポイント:**
%s

**推奨される文章構造:**
%s

**求められる文章のトーン:**
%s

**効果的なキーワード例:**
%s

**改善版ESの作成時の注意点:**
- %s業界で評価される表現を積極的に使用してください
- 業界特有の価値観や文化に合った表現に調整してください
- 上記のキーワードを自然に組み込んでください
- %sの構造を明確にしてください
`,
			industry,
			strings.Join(p.KeyPoints, ", "),
			strings.Join(p.Frameworks, ", "),
			p.Tone,
			strings.Join(p.Keywords, ", "),
			industry,
			p.Frameworks[0],
		)
	}

	b.WriteString(schemaDirective)
	return b.String()
}

// GetUserPrompt builds the user message carrying the literal submission data.
func GetUserPrompt(in ai.Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, `以下のESを分析してください。

【設問タイプ】: %s
【設問内容】: %s
【ES本文】:
%s
`, in.QuestionType, in.QuestionText, in.Content)

	if in.CompanyName != "" {
		fmt.Fprintf(&b, "\n【企業名】: %s", in.CompanyName)
	}
	if in.Industry != "" {
		fmt.Fprintf(&b, "\n【業界】: %s", in.Industry)
	}

	b.WriteString("\n\n上記のESを分析し、JSON形式で結果を返してください。")
	return b.String()
}

// rawResult mirrors the reply schema before normalization.
type rawResult struct {
	LogicScore          float64  `json:"logic_score"`
	SpecificityScore    float64  `json:"specificity_score"`
	ReadabilityScore    float64  `json:"readability_score"`
	ConsistencyScore    *float64 `json:"consistency_score"`
	StructureType       string   `json:"structure_type"`
	StructureEvaluation string   `json:"structure_evaluation"`
	ImprovementPoints   []string `json:"improvement_points"`
	ImprovedContent     string   `json:"improved_content"`
}

// ParseResult parses the scorer reply and normalizes a partially-conforming one.
// A consistency score that is absent or zero is stored as absent, not zero.
func ParseResult(raw string) (*ai.Result, error) {
	var rr rawResult
	if err := json.Unmarshal([]byte(raw), &rr); err != nil {
		return nil, fmt.Errorf("parsing scorer reply: %w", err)
	}

	res := &ai.Result{
		LogicScore:          rr.LogicScore,
		SpecificityScore:    rr.SpecificityScore,
		ReadabilityScore:    rr.ReadabilityScore,
		StructureType:       rr.StructureType,
		StructureEvaluation: rr.StructureEvaluation,
		ImprovementPoints:   rr.ImprovementPoints,
		ImprovedContent:     rr.ImprovedContent,
	}
	if rr.ConsistencyScore != nil && *rr.ConsistencyScore != 0 {
		v := *rr.ConsistencyScore
		res.ConsistencyScore = &v
	}
	if res.StructureType == "" {
		res.StructureType = StructureUnknown
	}
	if res.ImprovementPoints == nil {
		res.ImprovementPoints = []string{}
	}
	return res, nil
}
