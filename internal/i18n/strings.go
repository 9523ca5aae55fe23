package i18n

// Strings is the display copy for one language.
type Strings struct {
	LogoSubtitle    string
	InputLabel      string
	GenerateBtn     string
	LoadingStages   []string
	GalleryBack     string
	GalleryTitle    string
	FocusBack       string
	RevealHint      string
	FlipHint        string
	WhyLabel        string
	TipLabel        string
	ResetBtn        string
	MarkUsedBtn     string
	EmptyBack       string
	FinishedMessage string
	Examples        []string

	// ToggleLabel names the other language on the toggle control.
	ToggleLabel string

	ErrMissingKey       string
	ErrDescriptionShort string
	ErrEngine           string
}

var table = map[Language]Strings{
	Chinese: {
		LogoSubtitle:    "Deep talk reimagined",
		InputLabel:      "描述此刻的情境 / THE SCENE",
		GenerateBtn:     "生成专属对话命题",
		LoadingStages:   []string{"正在聆听语境...", "正在触碰灵魂...", "即将开启。"},
		GalleryBack:     "调整情境",
		GalleryTitle:    "未知即是惊喜 · 抽取一张开启对话",
		FocusBack:       "返回列表",
		RevealHint:      "按 Enter 揭晓内容",
		FlipHint:        "按空格翻看洞察",
		WhyLabel:        "逻辑解析",
		TipLabel:        "对话锦囊",
		ResetBtn:        "返回问题",
		MarkUsedBtn:     "标记为使用过",
		EmptyBack:       "重新开始",
		FinishedMessage: "对话终有尽头，但灵魂的共鸣没有。\n愿你在这些诚实的触碰中，已寻获内心渴望的答案。",
		Examples: []string{
			"我正和一位很久没见的老友在深夜的微醺时刻，想要叙旧并更新近况，语气温情且怀旧。",
			"和初次约会的对象在雨天的咖啡馆，想要跳过尬聊直接测试彼此的默契，语气浪漫且哲思。",
			"深夜一个人在阳台进行深度自我复盘，与内心的不安和解，语气诚实且冷静。",
			"和刚认识的旅伴在长途自驾的路上，想要打破尴尬并分享人生观，语气轻松幽默。",
			"平凡的晚餐时间，想和伴侣探讨深层价值观，规划共同的未来，语气治愈且温暖。",
		},
		ToggleLabel:         "English",
		ErrMissingKey:       "缺少 Gemini API Key（HEARTSYNC_GEMINI_API_KEY）。",
		ErrDescriptionShort: "请描述一下你目前的情境。",
		ErrEngine:           "对话引擎暂未响应。",
	},
	English: {
		LogoSubtitle:    "Deep talk reimagined",
		InputLabel:      "Describe the scene",
		GenerateBtn:     "Generate conversation prompts",
		LoadingStages:   []string{"Sensing context...", "Connecting souls...", "Almost there."},
		GalleryBack:     "Edit context",
		GalleryTitle:    "Embrace the unknown · Pick a card",
		FocusBack:       "Back to list",
		RevealHint:      "Press enter to reveal content",
		FlipHint:        "Press space to flip for insight",
		WhyLabel:        "Insight",
		TipLabel:        "Pro-tip",
		ResetBtn:        "Back to question",
		MarkUsedBtn:     "Mark as used",
		EmptyBack:       "Restart",
		FinishedMessage: "Every conversation has an end, but resonance lives on.\nMay you find exactly what you were looking for within these deep connections.",
		Examples: []string{
			"I'm catching up with an old friend late at night over drinks, feeling nostalgic and warm.",
			"A first date at a rainy cafe, wanting to skip small talk and test our deeper chemistry.",
			"Midnight on my balcony, having a deep honest conversation with my inner self.",
			"On a long road trip with a new travel buddy, sharing life philosophies to break the ice.",
			"A quiet dinner with my partner, discussing core values and planning our future together.",
		},
		ToggleLabel:         "中文",
		ErrMissingKey:       "Missing Gemini API key (HEARTSYNC_GEMINI_API_KEY).",
		ErrDescriptionShort: "Please describe your context.",
		ErrEngine:           "Conversation engine not responding.",
	},
}

// For returns the copy for l, falling back to Default for unknown values.
func For(l Language) Strings {
	if s, ok := table[l]; ok {
		return s
	}
	return table[Default]
}
