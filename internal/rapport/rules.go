package rapport

// The rule catalog: 15 positive (trainee) rules and 25 negative (customer)
// rules, grounded in the Satir interpersonal model and Taiwanese high-context
// speech conventions. The catalog is a flat list of tagged records filtered by
// predicate; rules are never mutated at runtime.
//
// Only structural tags the matcher actually enforces are carried in Patterns;
// everything a human reviewer needs lives in the metadata fields.

var catalog = []*Rule{
	// ── Positive rules: trainee trust-building language ──

	{
		ID:        "positive_empathy_expression",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioPhoneInvite, ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"我理解", "我明白", "我了解", "我知道", "我感覺得到", "我能體會"},
		Patterns:  []SentencePattern{PatternEmpathy},
		Intent:    "同理心表達 (Empathy Expression)",
		Psychology: "薩提爾一致性溝通的核心。透過語言明確表達對客戶感受的理解，降低杏仁核的防衛反應，" +
			"促進催產素釋放，建立情感連結。",
		Strategy:      "在客戶表達困難或疑慮時，立即給予同理，讓客戶感到被理解而非被推銷。",
		ResponseGuide: "我完全理解您的考量...",
		Impact:        5,
		Weight:        1.2,
	},
	{
		ID:        "positive_face_saving_buffer",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"很正常", "可以理解", "很多人", "這是合理的", "我也會這樣想", "確實"},
		Intent:    "面子保護緩衝 (Face-Saving Buffer)",
		Psychology: "台灣高語境文化的核心技巧。先肯定客戶的想法或顧慮是正常的，保護其面子，" +
			"然後再進行觀念引導。避免讓客戶感到被指正或批評。",
		Strategy:      "當客戶有錯誤觀念或異議時，先正常化其想法，再進行 Pacing and Leading。",
		ResponseGuide: "這個想法很正常，很多客戶一開始也這樣認為...",
		Impact:        4,
		Weight:        1.0,
	},
	{
		ID:        "positive_empowerment_validation",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"您很內行", "您的觀念很好", "您很精明", "您很懂", "您說得對", "您很專業", "您很有遠見"},
		Intent:    "賦權與肯定 (Empowerment & Validation)",
		Psychology: "特別適用於指責型和超理智型客戶。透過肯定其能力和判斷，滿足其優越感需求，" +
			"將其從對立面轉化為盟友。基於薩提爾的賦權策略。",
		Strategy:      "面對挑剔或展現專業知識的客戶，不要反駁，而是肯定其標準高、眼光好。",
		ResponseGuide: "您對這些細節這麼在意，可見您是非常謹慎的人...",
		Impact:        6,
		Weight:        1.3,
	},
	{
		ID:        "positive_safety_provision",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"我們會陪著您", "不用擔心", "很安全", "穩健", "我們一步一步", "我會協助您", "放心"},
		Intent:    "安全感提供 (Safety Provision)",
		Psychology: "特別適用於討好型客戶。討好型客戶害怕做錯決定，需要強大的安全感和引導。" +
			"透過承諾陪伴和支持，降低其決策焦慮。",
		Strategy:      "當客戶表現猶豫或焦慮時，提供明確的支持和陪伴承諾。",
		ResponseGuide: "別擔心，我們會一步一步陪著您完成，您不需要一個人承擔。",
		Impact:        5,
		Weight:        1.1,
	},
	{
		ID:        "positive_open_ended_question",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"您覺得", "您認為", "您的想法", "請問", "想請教", "您希望", "您需要"},
		Patterns:  []SentencePattern{PatternOpenQuestion},
		Intent:    "開放式探索問題 (Open-Ended Discovery)",
		Psychology: "展現對客戶意見的重視，給予其表達空間和掌控感。開放式問題能引導客戶自我探索需求，" +
			"比封閉式問題更能建立信任。",
		Strategy:      "用開放式問題了解客戶真實需求，避免直接推銷或假設客戶需求。",
		ResponseGuide: "您覺得什麼樣的保障規劃會讓您比較安心？",
		Impact:        3,
		Weight:        0.9,
	},
	{
		ID:        "positive_honesty_transparency",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"我要誠實說", "實話告訴您", "我必須坦白", "老實說", "據實說明", "透明地講"},
		Intent:    "透明誠實框架 (Honesty Frame)",
		Psychology: "在台灣保險市場信任赤字的背景下，主動的誠實揭露是建立信任的關鍵。" +
			"特別適用於投資型保單等敏感商品的說明。",
		Strategy:      "在說明產品風險或限制時，主動使用誠實框架，展現專業誠信。",
		ResponseGuide: "我要跟您誠實說明，這個商品確實有市場風險...",
		Impact:        7,
		Weight:        1.4,
	},
	{
		ID:        "positive_decision_autonomy",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"不急", "慢慢考慮", "沒有壓力", "您決定就好", "不勉強", "隨時都可以", "給您時間"},
		Intent:    "尊重決策自主權 (Decision Autonomy)",
		Psychology: "降低客戶的杏仁核戒備反應。越是強調不強迫，客戶越感到安全，反而更願意考慮。" +
			"這是反向心理學的應用。",
		Strategy:      "在適當時機表達不施壓，給予客戶心理空間。",
		ResponseGuide: "這個決定很重要，您慢慢考慮，沒有時間壓力。",
		Impact:        4,
		Weight:        1.0,
	},
	{
		ID:        "positive_concrete_solution",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"具體來說", "我們可以", "有個方法", "這樣規劃", "舉例來說", "比如說", "實際上"},
		Intent:    "具體方案提供 (Concrete Solution)",
		Psychology: "將抽象的保險概念轉化為具體可行的方案，降低認知負擔。具體性能增加可信度和可行性感知。",
		Strategy:      "當客戶表達預算或其他顧慮時，提供具體的、可操作的解決方案。",
		ResponseGuide: "具體來說，如果我們把保費分攤到每天，其實只是一杯咖啡的錢...",
		Impact:        5,
		Weight:        1.1,
	},
	{
		ID:        "positive_social_proof",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"很多客戶", "大家都", "大部分人", "我們服務過", "普遍的選擇", "市場上"},
		Intent:    "社會認證 (Social Proof)",
		Psychology: "利用從眾心理降低決策風險感知。特別適用於討好型客戶，他們傾向於跟隨多數人的選擇以避免犯錯。",
		Strategy:      "提供其他客戶的經驗或選擇，但要真實不能捏造。",
		ResponseGuide: "很多跟您情況類似的客戶都選擇這個方案，反應都很好。",
		Impact:        4,
		Weight:        1.0,
	},
	{
		ID:        "positive_personal_commitment",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"我保證", "我承諾", "我負責", "我會確保", "您可以信任我", "我向您保證"},
		Intent:    "個人服務承諾 (Personal Commitment)",
		Psychology: "將公司的抽象信任轉化為對業務員個人的信任。在台灣的關係文化中，" +
			"人與人之間的信任往往強於對組織的信任。",
		Strategy:      "在適當時機做出個人服務承諾，但必須是自己能做到的。",
		ResponseGuide: "我向您保證，無論將來發生什麼狀況，我都會親自協助您處理理賠。",
		Impact:        6,
		Weight:        1.2,
	},
	{
		ID:        "positive_value_reframe",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"不是費用而是", "這代表", "真正的價值", "長遠來看", "換個角度", "其實是"},
		Intent:    "價值重新框架 (Value Reframing)",
		Psychology: "NLP 的核心技巧。將客戶認知中的「成本」重新框架為「投資」或「保障」，" +
			"改變其心理帳戶的分類。",
		Strategy:      "當客戶關注價格時，重新框架為價值、保障或責任。",
		ResponseGuide: "這不只是一筆費用，這代表著您對家人的承諾和責任。",
		Impact:        5,
		Weight:        1.1,
	},
	{
		ID:        "positive_guanxi_connection",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioPhoneInvite, ScenarioProductMarketing},
		Posture:   PostureCongruent,
		Keywords:  []string{"有緣", "認識您是我的榮幸", "交個朋友", "長期合作", "互相照應", "建立關係"},
		Intent:    "關係資本建立 (Guanxi Building)",
		Psychology: "台灣商業文化的核心。將交易關係轉化為人際關係，建立長期的互惠網絡。" +
			"這符合台灣的集體主義文化價值觀。",
		Strategy:      "在適當時機表達希望建立長期關係而非一次性交易。",
		ResponseGuide: "能認識您是我的榮幸，希望未來能有機會為您服務。",
		Impact:        4,
		Weight:        1.0,
	},
	{
		ID:        "positive_structure_guidance",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"我們分三個步驟", "首先", "接下來", "最後", "整個流程", "讓我說明"},
		Intent:    "結構與引導提供 (Structure Provision)",
		Psychology: "薩提爾變革模型中的關鍵。在客戶面對複雜資訊感到混亂時，提供清晰的結構能降低焦慮，" +
			"增加掌控感。",
		Strategy:      "將複雜的保險資訊拆解為清晰的步驟或架構。",
		ResponseGuide: "讓我用三個步驟跟您說明這個規劃...",
		Impact:        3,
		Weight:        0.9,
	},
	{
		ID:        "positive_flexibility_adaptation",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		Posture:   PostureCongruent,
		Keywords:  []string{"我們可以調整", "彈性規劃", "客製化", "配合您的", "有其他方案", "可以修改"},
		Intent:    "彈性與適應性 (Flexibility & Adaptation)",
		Psychology: "展現願意為客戶調整方案的態度，讓客戶感到被重視。避免給人「一套方案賣給所有人」" +
			"的制式化印象。",
		Strategy:      "當客戶表達特殊需求或預算限制時，展現調整意願。",
		ResponseGuide: "這個方案我們可以根據您的預算來調整，不是固定的。",
		Impact:        4,
		Weight:        1.0,
	},
	{
		ID:        "positive_risk_disclosure",
		Kind:      KindPositive,
		Scenarios: []Scenario{ScenarioProductMarketing},
		Posture:   PostureCongruent,
		Keywords:  []string{"必須注意", "有風險", "除外責任", "限制條件", "這點要特別說明", "可能的狀況"},
		Intent:    "主動風險揭露 (Proactive Risk Disclosure)",
		Psychology: "反向操作的信任建立。主動揭露產品限制和風險，展現專業誠信，" +
			"反而能增加客戶對業務員的信任。",
		Strategy:      "在客戶詢問前，主動說明產品的限制和除外責任。",
		ResponseGuide: "這個商品確實很好，但有幾點除外責任我必須跟您說明清楚...",
		Impact:        6,
		Weight:        1.3,
	},

	// ── Scenario: phone invite — negative rules ──

	{
		ID:           "tele_avoidant_busy_excuse",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioPhoneInvite},
		CustomerType: CustomerAvoidant,
		Posture:      PostureIrrelevant,
		Keywords:     []string{"開會", "開車", "在忙", "沒空", "趕時間", "忙"},
		Patterns:     []SentencePattern{PatternShortSentence},
		Intent:       "假性忙碌 (False Busy)",
		Psychology: "薩提爾『打岔型』：並非真的在忙，而是啟動『反射性拒絕』機制，避免認知負擔。" +
			"這是大腦為了節省認知資源的自動防衛反應。",
		Strategy: "突破反射防衛：不爭辯忙碌事實，改用『15秒鉤子』換取注意力。" +
			"接受其忙碌框架，但要求極小承諾。",
		ResponseGuide: "好，只耽誤您15秒，這通電話主要目的是...",
		Impact:        -5,
		Weight:        1.0,
	},
	{
		ID:           "tele_avoidant_send_info_only",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioPhoneInvite},
		CustomerType: CustomerAvoidant,
		Posture:      PostureIrrelevant,
		Keywords:     []string{"寄信", "寄資料", "傳真", "看一看", "有興趣再說", "email", "寄給我"},
		Intent:       "敷衍打發 (Brush-off)",
		Psychology: "典型的『軟性拒絕』。透過答應看資料來結束通話，實際上收到後不會閱讀。" +
			"這是台灣高語境文化中避免直接拒絕的策略。",
		Strategy:      "門檻策略：『資料很多，為了不浪費您時間，我只寄您最需要的，請問您幾歲？』強迫互動。",
		ResponseGuide: "資料很多，為了精準，請問您...",
		Impact:        -5,
		Weight:        1.0,
	},
	{
		ID:           "tele_skeptical_data_source",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioPhoneInvite},
		CustomerType: CustomerSkeptical,
		Posture:      PostureBlaming,
		Keywords:     []string{"怎麼有電話", "誰給你的", "個資", "哪裡拿到", "亂槍打鳥", "隱私"},
		Patterns:     []SentencePattern{PatternInterrogative},
		Intent:       "信任測試 (Trust Test)",
		Psychology: "薩提爾『指責型』：因缺乏安全感而先發制人，測試業務員的誠信與正當性。" +
			"這反映了台灣社會對詐騙的高度警戒。",
		Strategy:      "一致性應對 (Congruence)：誠實告知來源（如問卷、舊客介紹），不閃躲，展現專業的一致性。",
		ResponseGuide: "是您上個月在網路上填寫了...，所以我特地...",
		Impact:        -8,
		Weight:        1.5,
	},
	{
		ID:           "tele_skeptical_unwanted_cold_call",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioPhoneInvite},
		CustomerType: CustomerSkeptical,
		Posture:      PostureBlaming,
		Keywords:     []string{"不需要", "推銷", "很煩", "又是保險", "別打來"},
		Patterns:     []SentencePattern{PatternNegation},
		Intent:       "硬性拒絕 (Hard Rejection)",
		Psychology:   "過往可能有不好的推銷經驗，產生刻板印象。這是一種防衛性的攻擊反應。",
		Strategy:      "去標籤化策略：『我不是來推銷保單，而是來通知一個您可能忽略的權益。』",
		ResponseGuide: "理解您常接電話，但我今天打來是因為...",
		Impact:        -9,
		Weight:        1.5,
	},
	{
		ID:           "tele_neutral_curiosity",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioPhoneInvite},
		CustomerType: CustomerNeutral,
		Posture:      PosturePlacating,
		Keywords:     []string{"什麼東西", "送什麼", "抽獎", "免費", "贈品"},
		Intent:       "誘因驅動 (Incentive Driven)",
		Psychology:   "對保險無感，只對『貪小便宜』有感。薩提爾『討好型』(順從慾望)。",
		Strategy:      "鉤子策略：利用贈品作為見面理由，但強調『名額有限』，製造稀缺性。",
		ResponseGuide: "這個健檢禮很搶手，我特地留一份給您，明天方便...",
		Impact:        -2,
		Weight:        0.8,
	},
	{
		ID:           "tele_neutral_hurried",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioPhoneInvite},
		CustomerType: CustomerNeutral,
		Posture:      PostureIrrelevant,
		Keywords:     []string{"快點", "重點", "然後呢", "趕時間", "講重點"},
		Patterns:     []SentencePattern{PatternShortSentence},
		Intent:       "時間施壓 (Time Pressure)",
		Psychology:   "耐心極低，準備掛斷的前兆。並非真的趕時間，而是話題無趣。",
		Strategy:      "直球對決：直接講出最核心利益點 (Killer Benefit)，放棄鋪陳與寒暄。",
		ResponseGuide: "好，重點是這張保單能幫您節稅xx元...",
		Impact:        -6,
		Weight:        1.2,
	},
	{
		ID:           "tele_insured_saturation",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioPhoneInvite},
		CustomerType: CustomerInsured,
		Posture:      PostureSuperReasonable,
		Keywords:     []string{"買滿了", "足夠", "幾十張", "不用了", "很多張"},
		Patterns:     []SentencePattern{PatternNegation},
		Intent:       "能力防衛罩 (Competence Shield)",
		Psychology:   "薩提爾『超理智型』：透過展現已有資源來維持優越感，拒絕被推銷。",
		Strategy: "賦權策略 (Validating)：肯定其觀念，轉化為『保單健檢』。不挑戰既有決策，" +
			"而是尋找動態缺口。",
		ResponseGuide: "您觀念很棒！但醫療技術在變，這份舊保單可能...",
		Impact:        -6,
		Weight:        1.2,
	},
	{
		ID:           "tele_insured_friend_agent",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioPhoneInvite},
		CustomerType: CustomerInsured,
		Posture:      PosturePlacating,
		Keywords:     []string{"跟朋友買", "人情", "親戚在做", "不好意思", "朋友是業務"},
		Intent:       "人情障礙 (Loyalty Barrier)",
		Psychology:   "台灣重人情 (Guanxi)。背叛朋友會有罪惡感。對原業務員是『討好型』。",
		Strategy:      "互補策略：不取代朋友，強調『第二意見』或『補足朋友沒做的』。",
		ResponseGuide: "朋友服務很好，我只是幫您做個客觀的第二意見...",
		Impact:        -5,
		Weight:        1.0,
	},

	// ── Scenario: product marketing — negative rules (many also apply to
	// objection handling) ──

	{
		ID:           "sales_neutral_passive_listening",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerNeutral,
		Posture:      PosturePlacating,
		Keywords:     []string{"喔", "嗯", "是喔", "嘿", "好"},
		Intent:       "禮貌性敷衍 (Polite Disengagement)",
		Psychology:   "薩提爾『討好型』：不想當面拒絕傷和氣，但實際上心不在焉（人在心不在）。",
		Strategy:      "喚醒策略：使用封閉式二擇一問題，或突然改變語速來抓回注意力。",
		ResponseGuide: "陳先生，關於這點您比較在意保障額度還是保費？",
		Impact:        -3,
		Weight:        0.8,
	},
	{
		ID:           "sales_neutral_ambiguous_affirmation",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerNeutral,
		Posture:      PosturePlacating,
		Keywords:     []string{"是不錯", "還可以", "沒意見", "都可以", "不錯啦"},
		Intent:       "假性同意 (Pseudo Agreement)",
		Psychology:   "表面順從但內心無動感。在台灣語境中，『是不錯啦』通常意味著『但我不會買』。",
		Strategy:      "測試性收單：既然沒意見，就嘗試推進成交，逼出真實異議。",
		ResponseGuide: "既然覺得不錯，那我們試算一下保費，看哪個方案適合？",
		Impact:        -4,
		Weight:        0.9,
	},
	{
		ID:           "sales_neutral_silent",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerNeutral,
		Posture:      PostureIrrelevant,
		Keywords:     []string{"...", "嗯哼"},
		Intent:       "沉默抗拒 (Silent Resistance)",
		Psychology:   "沉默是強大的防衛。薩提爾『打岔/抽離』。讓業務員尷尬而自亂陣腳。",
		Strategy:      "鏡像沉默：業務員也保持沉默，製造適度壓力，迫使客戶開口。",
		ResponseGuide: "(保持微笑與沉默，等待客戶開口)",
		Impact:        -8,
		Weight:        1.3,
	},
	{
		ID:           "sales_avoidant_soft_rejection_consider",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerAvoidant,
		Posture:      PosturePlacating,
		Keywords:     []string{"再看看", "考慮一下", "再研究", "回去想", "不急", "想一想"},
		Intent:       "軟性拒絕 - 推託 (Soft Rejection - Deferral)",
		Psychology:   "台灣語用特色：『考慮』通常等於『拒絕』。害怕當面衝突，給雙方台階下。",
		Strategy:      "具體化策略：直接詢問『考慮的具體點』是預算還是條款，不讓話題懸空。",
		ResponseGuide: "了解，通常考慮是因為預算還是條款細節？",
		Impact:        -7,
		Weight:        1.2,
	},
	{
		ID:           "sales_avoidant_authority_deferral",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerAvoidant,
		Posture:      PosturePlacating,
		Keywords:     []string{"問老婆", "問老公", "家人", "商量", "作主", "太太", "先生"},
		Intent:       "決策權轉移 (Authority Deferral)",
		Psychology:   "利用『不在場的第三方』作為拒絕的理由，避免承擔直接拒絕的心理壓力。",
		Strategy:      "盟友策略：將其變成盟友，詢問『若您自己決定會買嗎？』釐清真實意願。",
		ResponseGuide: "如果不考慮家人的意見，您自己喜歡這份規劃嗎？",
		Impact:        -6,
		Weight:        1.1,
	},
	{
		ID:           "sales_avoidant_budget_excuse",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerAvoidant,
		Posture:      PostureIrrelevant,
		Keywords:     []string{"沒錢", "太貴", "手頭緊", "最近花費大", "吃土", "負擔不起"},
		Intent:       "價格抗拒 (Price Resistance)",
		Psychology:   "可能是真沒錢，也可能是『價值<價格』的婉轉說法。薩提爾『打岔型』。",
		Strategy:      "拆解策略：將總價拆解為『每天幾元』，或詢問『若不考慮預算』來測試真偽。",
		ResponseGuide: "若不看價格，這個保障內容是您需要的嗎？",
		Impact:        -7,
		Weight:        1.1,
	},
	{
		ID:           "sales_avoidant_self_deprecating",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerAvoidant,
		Posture:      PosturePlacating,
		Keywords:     []string{"我不懂啦", "我很笨", "你決定就好", "隨緣", "看你"},
		Intent:       "依賴卸責 (Dependency)",
		Psychology:   "薩提爾『討好型』極致。害怕做錯決定，乾脆不做決定或全聽別人的。",
		Strategy:      "引導與保證：給予極大的安全感與簡單選項，『多數人都選這個』。",
		ResponseGuide: "別擔心，這個方案是最多人選的標準配備，很安全。",
		Impact:        -4,
		Weight:        0.9,
	},
	{
		ID:           "sales_skeptical_price_compare",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerSkeptical,
		Posture:      PostureBlaming,
		Keywords:     []string{"別家", "便宜", "網路上", "CP值", "貴", "比較"},
		Patterns:     []SentencePattern{PatternComparative},
		Intent:       "價值挑戰 (Value Challenge)",
		Psychology:   "薩提爾『指責型』：透過貶低產品價值來爭取談判籌碼或證明自己精明。",
		Strategy:      "差異化策略：認同價格差異，立即轉向『價值/理賠服務』的獨特性說明。",
		ResponseGuide: "沒錯，網路確實便宜，但理賠時我們多了專人服務...",
		Impact:        -5,
		Weight:        1.2,
	},
	{
		ID:           "sales_skeptical_fine_print",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerSkeptical,
		Posture:      PostureBlaming,
		Keywords:     []string{"陷阱", "文字遊戲", "不賠", "看清楚", "條款", "除外"},
		Intent:       "信任斷層 (Trust Gap)",
		Psychology:   "深層恐懼：害怕被騙。薩提爾『指責型』背後是對受傷的焦慮。",
		Strategy:      "透明化策略：主動指出『除外責任』條款，展現比客戶更嚴謹的誠實。",
		ResponseGuide: "您很內行，這條款確實要注意，我帶您看第10條...",
		Impact:        -9,
		Weight:        1.5,
	},
	{
		ID:           "sales_skeptical_reputation",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerSkeptical,
		Posture:      PostureBlaming,
		Keywords:     []string{"網評", "負評", "那家公司", "新聞", "爛", "評價"},
		Intent:       "公司信任危機 (Company Distrust)",
		Psychology:   "將對公司的印象投射到業務員身上。薩提爾『指責型』。",
		Strategy:      "切割與承諾：承認公司過去問題，強調『我』個人的服務承諾與差異。",
		ResponseGuide: "公司確實有改進空間，但我保證我的服務是...",
		Impact:        -9,
		Weight:        1.5,
	},
	{
		ID:           "sales_skeptical_return_rate",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerSkeptical,
		Posture:      PostureSuperReasonable,
		Keywords:     []string{"利率", "定存", "股票", "通膨", "划不來", "報酬率"},
		Intent:       "投資比較 (Investment Comparison)",
		Psychology:   "將保險錯誤定錨為投資商品。薩提爾『超理智』，只看數字忽略風險。",
		Strategy:      "風險重新定錨：強調保險的『槓桿』與『保本』功能，非單純投報率。",
		ResponseGuide: "股票賺錢很快，但保險是為了留住錢，這是風險管理。",
		Impact:        -6,
		Weight:        1.2,
	},
	{
		ID:           "sales_insured_know_it_all",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioProductMarketing, ScenarioObjectionHandling},
		CustomerType: CustomerInsured,
		Posture:      PostureSuperReasonable,
		Keywords:     []string{"那個我知道", "不用解釋", "我看過", "簡單講", "懂"},
		Intent:       "主導權展示 (Dominance Display)",
		Psychology:   "薩提爾『超理智』控制狂。不喜歡處於『被教導』的低位。",
		Strategy:      "請教策略：滿足其優越感，『既然您懂，想請教您怎麼看這點？』",
		ResponseGuide: "您是行家！那這部分我就不贅述，直接看重點...",
		Impact:        -7,
		Weight:        1.3,
	},

	// ── Scenario: objection/dispute handling — negative rules ──

	{
		ID:           "dispute_skeptical_pre_existing",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioObjectionHandling},
		CustomerType: CustomerSkeptical,
		Posture:      PostureBlaming,
		Keywords:     []string{"沒說", "不知情", "既往症", "硬凹", "亂講", "沒告訴我"},
		Intent:       "義務否認 (Denial of Duty)",
		Psychology:   "面對拒賠風險，啟動『指責型』防衛，否認自身的告知義務。",
		Strategy:      "法理情兼顧：先同理其挫折感，再客觀呈現投保時的健告文件。",
		ResponseGuide: "我理解這讓人錯愕，但根據健告書上的紀錄...",
		Impact:        -10,
		Weight:        1.8,
	},
	{
		ID:           "dispute_insured_legal_threat",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioObjectionHandling},
		CustomerType: CustomerInsured,
		Posture:      PostureBlaming,
		Keywords:     []string{"金管會", "評議中心", "媒體", "蘋果", "存證信函", "告你"},
		Intent:       "升級威脅 (Escalation Threat)",
		Psychology:   "薩提爾『超理智』+『指責』。利用外部權威施壓，尋求快速解決。",
		Strategy:      "降溫策略：不被威脅激怒，冷靜重申處理誠意，並提供正規申訴管道以示無懼。",
		ResponseGuide: "這是您的權利，但我更希望能幫您直接解決問題...",
		Impact:        -10,
		Weight:        1.8,
	},
	{
		ID:           "dispute_skeptical_agent_error",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioObjectionHandling},
		CustomerType: CustomerSkeptical,
		Posture:      PostureBlaming,
		Keywords:     []string{"當初", "業務員說", "亂賣", "沒講清楚", "騙我簽名"},
		Intent:       "招攬不實指控 (Mis-selling Accusation)",
		Psychology:   "薩提爾『指責型』。將責任外推給前手業務員，試圖獲得例外處理。",
		Strategy:      "同理但不認錯：同理其感受，但釐清事實，避免替前手業務員背黑鍋。",
		ResponseGuide: "當時的情況我沒參與，但現在我能幫您做的是...",
		Impact:        -10,
		Weight:        1.8,
	},
	{
		ID:           "dispute_neutral_confusion",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioObjectionHandling},
		CustomerType: CustomerNeutral,
		Posture:      PosturePlacating,
		Keywords:     []string{"怎麼會", "我不懂", "複雜", "隨便啦", "麻煩", "不知道"},
		Intent:       "習得無助 (Helplessness)",
		Psychology: "薩提爾『討好型』變體。面對複雜理賠流程感到無力，可能放棄權益或累積隱性不滿。",
		Strategy:      "簡化引導：擔任『導遊』角色，將流程拆解為簡單步驟，消除無助感。",
		ResponseGuide: "別擔心，我們只要補這張單子就好，我教您寫...",
		Impact:        -4,
		Weight:        0.9,
	},
	{
		ID:           "dispute_avoidant_ghosting",
		Kind:         KindNegative,
		Scenarios:    []Scenario{ScenarioObjectionHandling},
		CustomerType: CustomerAvoidant,
		Posture:      PostureIrrelevant,
		Keywords:     []string{"沒收到", "忘記", "太忙", "下次", "找不到"},
		Intent:       "流程拖延 (Process Stalling)",
		Psychology:   "面對理賠補件的繁瑣感到逃避。薩提爾『打岔型』。",
		Strategy:      "便利性策略：提供『到府收件』或『拍照上傳』的最簡便路徑。",
		ResponseGuide: "沒關係，您現在拍給我，我幫您填。",
		Impact:        -6,
		Weight:        1.1,
	},
}
