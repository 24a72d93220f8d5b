package prompt

// IndustryProfile holds the evaluation emphasis for one industry label.
// Behavior differs only by data substitution, so this is a lookup table, not code.
type IndustryProfile struct {
	KeyPoints  []string
	Frameworks []string
	Tone       string
	Keywords   []string
}

// industryProfiles is the closed set of known industry labels.
// Unknown labels (including empty) fall back to the generic instruction set.
var industryProfiles = map[string]IndustryProfile{
	"コンサルティング": {
		KeyPoints:  []string{"論理的思考力", "問題解決能力", "フレームワーク活用", "定量的分析", "仮説検証"},
		Frameworks: []string{"PREP法", "ロジックツリー", "MECE", "因果関係の明確化"},
		Tone:       "簡潔で論理的、ビジネスライク",
		Keywords:   []string{"課題", "分析", "仮説", "検証", "成果", "インパクト", "Why", "How"},
	},
	"IT・エンジニア": {
		KeyPoints:  []string{"技術力", "問題解決", "学習意欲", "チーム開発", "アウトプット"},
		Frameworks: []string{"STAR法", "課題→アプローチ→実装→結果"},
		Tone:       "具体的で技術的、プロセス重視",
		Keywords:   []string{"技術", "開発", "実装", "最適化", "改善", "効率化", "GitHub", "チーム"},
	},
	"商社": {
		KeyPoints:  []string{"行動力", "コミュニケーション力", "グローバル志向", "交渉力", "粘り強さ"},
		Frameworks: []string{"STAR法", "状況→行動→結果"},
		Tone:       "エネルギッシュで人間味がある",
		Keywords:   []string{"挑戦", "巻き込み", "働きかけ", "達成", "粘り強く", "関係構築", "海外", "多様性"},
	},
	"メガベンチャー": {
		KeyPoints:  []string{"主体性", "スピード感", "成長意欲", "変化対応力", "当事者意識"},
		Frameworks: []string{"STAR法", "チャレンジと成長"},
		Tone:       "前向きで主体的、成長志向",
		Keywords:   []string{"主体的", "0→1", "スピード", "成長", "挑戦", "変化", "自ら", "圧倒的"},
	},
	"金融": {
		KeyPoints:  []string{"正確性", "誠実性", "数字への強さ", "リスク管理", "責任感"},
		Frameworks: []string{"PREP法", "事実ベース"},
		Tone:       "誠実で堅実、正確性重視",
		Keywords:   []string{"正確", "責任", "信頼", "数字", "分析", "リスク", "慎重", "誠実"},
	},
	"メーカー": {
		KeyPoints:  []string{"ものづくり志向", "改善意識", "協調性", "粘り強さ", "品質意識"},
		Frameworks: []string{"STAR法", "課題→改善→結果"},
		Tone:       "堅実で協調的、プロセス重視",
		Keywords:   []string{"改善", "品質", "工夫", "チーム", "粘り強く", "ものづくり", "最適化"},
	},
}

// ProfileFor looks up the profile for an industry label.
func ProfileFor(industry string) (IndustryProfile, bool) {
	p, ok := industryProfiles[industry]
	return p, ok
}
