package i18n

type Messages struct {
	Title          string
	Prefix         string
	Suffix         string
	Contains       string
	CaseSensitive  string
	Target         string
	Workers        string
	Source         string
	Expected       string
	Chance         string
	None           string
	Yes            string
	No             string
	StartedAt      string
	Launching      string
	ProgressFmt    string // bar, percent, attempts, rate, eta
	Imminent       string
	FoundAddress   string
	FoundKey       string
	FoundMnemonic  string
	FoundCount     string
	Elapsed        string
	Attempts       string
	LuckGreat      string // ratio percent
	LuckGood       string
	LuckKeepGoing  string
	Done           string
	Cancelled      string
	TotalTime      string
	TotalAttempts  string
	AvgRate        string
	Count          string
	SavedTo        string
	OverallGreat   string
	OverallGood    string
	OverallNormal  string
	OverallPatient string
	Reminder       string
}

func Get(lang string) Messages {
	switch lang {
	case "zh":
		return Messages{
			Title:          "EVM 靓号生成器",
			Prefix:         "前缀 (Prefix):     %s\n",
			Suffix:         "后缀 (Suffix):     %s\n",
			Contains:       "包含 (Contains):   %s\n",
			CaseSensitive:  "区分大小写:         %s\n",
			Target:         "生成数量:          %d 个\n",
			Workers:        "使用核心:          %d 核\n",
			Source:         "密钥来源:          %s\n",
			Expected:       "理论尝试:          %s 次\n",
			Chance:         "理论成功率:        %.6f%%\n",
			None:           "(无)",
			Yes:            "是",
			No:             "否",
			StartedAt:      "开始时间: %s\n",
			Launching:      "启动 %d 个工作协程...\n",
			ProgressFmt:    "[%s] %5.2f%% | 已尝试: %9s | 速度: %10s | 预计: %s",
			Imminent:       "随时可能",
			FoundAddress:   "找到匹配地址: %s\n",
			FoundKey:       "   私钥: %s\n",
			FoundMnemonic:  "   助记词: %s (%s)\n",
			FoundCount:     "已找到 %d/%d 个地址\n",
			Elapsed:        "用时: %s\n",
			Attempts:       "尝试: %s 次\n",
			LuckGreat:      "运气爆棚，仅用了理论值的 %.1f%%！\n",
			LuckGood:       "不错！快于平均速度。\n",
			LuckKeepGoing:  "继续加油！下一个可能会更快。\n",
			Done:           "全部完成！\n",
			Cancelled:      "用户中断\n",
			TotalTime:      "总用时:     %s\n",
			TotalAttempts:  "总尝试:     %s 次\n",
			AvgRate:        "平均速度:   %s\n",
			Count:          "生成数量:   %d 个\n",
			SavedTo:        "保存位置:   %s\n",
			OverallGreat:   "整体运气爆棚，远快于理论预期！\n",
			OverallGood:    "整体运气还可以，快于平均水平！\n",
			OverallNormal:  "正常水平，接近理论预期。\n",
			OverallPatient: "耐心点，好运还在后面！\n",
			Reminder:       "请妥善保管私钥，不要泄露给任何人。\n",
		}
	default: // "en"
		return Messages{
			Title:          "EVM vanity address generator",
			Prefix:         "Prefix:          %s\n",
			Suffix:         "Suffix:          %s\n",
			Contains:       "Contains:        %s\n",
			CaseSensitive:  "Case sensitive:  %s\n",
			Target:         "Wallets wanted:  %d\n",
			Workers:        "Workers:         %d\n",
			Source:         "Key source:      %s\n",
			Expected:       "Expected tries:  %s\n",
			Chance:         "Chance per try:  %.6f%%\n",
			None:           "(none)",
			Yes:            "yes",
			No:             "no",
			StartedAt:      "Started at: %s\n",
			Launching:      "Launching %d workers...\n",
			ProgressFmt:    "[%s] %5.2f%% | tried: %9s | rate: %10s | ETA: %s",
			Imminent:       "any moment",
			FoundAddress:   "Found matching address: %s\n",
			FoundKey:       "   private key: %s\n",
			FoundMnemonic:  "   mnemonic: %s (%s)\n",
			FoundCount:     "Found %d/%d addresses\n",
			Elapsed:        "Elapsed: %s\n",
			Attempts:       "Attempts: %s\n",
			LuckGreat:      "Lucky! Only %.1f%% of the expected attempts.\n",
			LuckGood:       "Nice, faster than average.\n",
			LuckKeepGoing:  "Keep going, the next one may come sooner.\n",
			Done:           "All done!\n",
			Cancelled:      "Interrupted by user\n",
			TotalTime:      "Total time:      %s\n",
			TotalAttempts:  "Total attempts:  %s\n",
			AvgRate:        "Average rate:    %s\n",
			Count:          "Wallets found:   %d\n",
			SavedTo:        "Saved to:        %s\n",
			OverallGreat:   "Overall far luckier than expected!\n",
			OverallGood:    "Overall a bit faster than average.\n",
			OverallNormal:  "Close to the theoretical expectation.\n",
			OverallPatient: "Patience, luck evens out.\n",
			Reminder:       "Keep the private keys safe and never share them.\n",
		}
	}
}
