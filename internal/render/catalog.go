package render

import (
	"github.com/vicquana/majian-game-1/internal/odds"
	"github.com/vicquana/majian-game-1/internal/rules"
	"github.com/vicquana/majian-game-1/internal/session"
)

// Key names a piece of user-facing text
type Key string

const (
	KeyTitle       Key = "title"
	KeySubtitle    Key = "subtitle"
	KeyWelcome     Key = "welcome"
	KeyProgress    Key = "progress"
	KeyDeckLeft    Key = "deck_left"
	KeyTable       Key = "table"
	KeyTableEmpty  Key = "table_empty"
	KeyDrawn       Key = "drawn"
	KeyWinButton   Key = "win_button"
	KeyWinBanner   Key = "win_banner"
	KeyWinLabel    Key = "win_label"
	KeyPlayAgain   Key = "play_again"
	KeyPanelTitle  Key = "panel_title"
	KeyPanelTarget Key = "panel_target"
	KeyPanelLeft   Key = "panel_left"
	KeyPanelChance Key = "panel_chance"
	KeyBoardTitle  Key = "board_title"
	KeyTipsTitle   Key = "tips_title"
	KeyTip1        Key = "tip_1"
	KeyTip2        Key = "tip_2"
	KeyTip3        Key = "tip_3"
	KeyTutorial    Key = "tutorial"
	KeyPrompt      Key = "prompt"
	KeyHelp        Key = "help"
	KeyNoWin       Key = "no_win"
	KeyGameOver    Key = "game_over"
	KeyCannotWin   Key = "cannot_win"
	KeyBadTile     Key = "bad_tile"
	KeyUnknownCmd  Key = "unknown_command"
	KeyBye         Key = "bye"
)

var catalog = map[string]map[Key]string{
	"zh": {
		KeyTitle:       "小小麻將概率教室",
		KeySubtitle:    "適合孩子學習概率的簡化麻將",
		KeyWelcome:     "歡迎來到小小麻將概率教室！",
		KeyProgress:    "當前進度",
		KeyDeckLeft:    "剩餘",
		KeyTable:       "已打出的牌 (分析對象)",
		KeyTableEmpty:  "桌面上還沒有牌，大膽開始吧！",
		KeyDrawn:       "新摸進",
		KeyWinButton:   "胡！輸入 h 宣布胡牌",
		KeyWinBanner:   "胡牌勝利！",
		KeyWinLabel:    "勝利：",
		KeyPlayAgain:   "輸入 r 再挑戰一次",
		KeyPanelTitle:  "💡 概率推測助手",
		KeyPanelTarget: "目標牌: ",
		KeyPanelLeft:   "剩餘: ",
		KeyPanelChance: "下一張摸到的機會: ",
		KeyBoardTitle:  "每種牌還剩幾張",
		KeyTipsTitle:   "規則小貼士",
		KeyTip1:        "✔ 胡牌公式：3 張一樣 (刻子) + 2 張一樣 (對子)。",
		KeyTip2:        "✔ 胡牌選擇：看到「胡」的提示時即可勝利！",
		KeyTip3:        "★ 白板：幸運之星！它可以當作任何一張牌使用。",
		KeyTutorial: "胡牌攻略 📖\n" +
			"勝利陣型示例：【1 1 1】+【2 2】，也就是【3 張一樣】+【2 張一樣】。\n" +
			"主動胡牌：當滿足獲勝條件時，會出現「胡」的提示。輸入 h 即可宣布胡牌勝利！\n" +
			"學會推測概率：觀察桌面上的「明牌」。如果某種牌已經出現了 4 次，你就再也摸不到了。數量越多，摸到的機會越大！",
		KeyPrompt:     "> ",
		KeyHelp:       "指令：1-4 打出手牌，d 打出新摸的牌，h 胡牌，p <牌> 概率，b 全部剩餘，r 重新開始，? 說明，q 離開",
		KeyNoWin:      "還不是胡牌。",
		KeyGameOver:   "這一局已經結束了，輸入 r 重新開始。",
		KeyCannotWin:  "現在還不能胡牌哦。",
		KeyBadTile:    "沒有這張牌。",
		KeyUnknownCmd: "看不懂這個指令。",
		KeyBye:        "下次見！",
	},
	"en": {
		KeyTitle:       "Little Mahjong Probability Classroom",
		KeySubtitle:    "A simplified mahjong for learning probability",
		KeyWelcome:     "Welcome to the Little Mahjong Probability Classroom!",
		KeyProgress:    "Progress",
		KeyDeckLeft:    "Left",
		KeyTable:       "Discarded tiles (what we can see)",
		KeyTableEmpty:  "No tiles on the table yet, go ahead!",
		KeyDrawn:       "New",
		KeyWinButton:   "Win! Type h to declare",
		KeyWinBanner:   "You win!",
		KeyWinLabel:    "Win: ",
		KeyPlayAgain:   "Type r to play again",
		KeyPanelTitle:  "💡 Probability helper",
		KeyPanelTarget: "Target: ",
		KeyPanelLeft:   "Left: ",
		KeyPanelChance: "Chance on the next draw: ",
		KeyBoardTitle:  "Tiles still unseen",
		KeyTipsTitle:   "Rule tips",
		KeyTip1:        "✔ Winning formula: 3 of a kind (triplet) + 2 of a kind (pair).",
		KeyTip2:        "✔ When the win prompt shows up, you can win!",
		KeyTip3:        "★ White board: the lucky star! It can stand for any tile.",
		KeyTutorial: "How to win 📖\n" +
			"Winning shape: [1 1 1] + [2 2], that is [3 of a kind] + [2 of a kind].\n" +
			"Declare the win: when the hand wins, a prompt appears. Type h to win!\n" +
			"Guess the odds: look at the tiles on the table. Once a tile has shown up 4 times you can never draw it again. The more copies left, the better your chances!",
		KeyPrompt:     "> ",
		KeyHelp:       "Commands: 1-4 discard from hand, d discard new tile, h win, p <tile> odds, b board, r restart, ? help, q quit",
		KeyNoWin:      "Not a winning hand.",
		KeyGameOver:   "This game is over, type r to start again.",
		KeyCannotWin:  "You cannot win yet.",
		KeyBadTile:    "There is no such tile.",
		KeyUnknownCmd: "Unknown command.",
		KeyBye:        "See you next time!",
	},
}

var notices = map[string]map[session.Notice]string{
	"zh": {
		session.NoticeStart:       "遊戲開始！請看右邊新摸的牌，選擇一張不需要的打掉。",
		session.NoticeStartCanWin: "恭喜！你可以選擇胡牌或繼續挑戰更高分。",
		session.NoticeDiscarded:   "打出了 %s。摸到了一張新牌！",
		session.NoticeWinChance:   "機會來了！你可以胡牌了！",
		session.NoticeExhausted:   "流局了（牌抓完啦），下次加油！",
		session.NoticeWon:         "胡牌勝利！恭喜達成目標！",
	},
	"en": {
		session.NoticeStart:       "Let's go! Look at the new tile on the right and discard one you don't need.",
		session.NoticeStartCanWin: "Congratulations! You can win now or keep going.",
		session.NoticeDiscarded:   "Discarded %s. You drew a new tile!",
		session.NoticeWinChance:   "Here's your chance! You can win now!",
		session.NoticeExhausted:   "No more tiles, it's a draw. Better luck next time!",
		session.NoticeWon:         "You won! Goal reached!",
	},
}

var reasons = map[string]map[rules.Pattern]string{
	"zh": {
		rules.TripletPair:         "刻子 (3張一樣) + 對子 (2張一樣)",
		rules.TripletWildPair:     "刻子 + 將牌 (用白板湊成對子)",
		rules.WildTripletPair:     "刻子 + 將牌 (用白板湊成刻子)",
		rules.WildTripletWildPair: "刻子 + 將牌 (用白板湊成刻子和對子)",
	},
	"en": {
		rules.TripletPair:         "triplet + pair",
		rules.TripletWildPair:     "triplet + wildcard pair",
		rules.WildTripletPair:     "wildcard triplet + pair",
		rules.WildTripletWildPair: "wildcard triplet + wildcard pair",
	},
}

var hints = map[string]map[odds.HintLevel]string{
	"zh": {
		odds.Impossible: "⚠️ 不可能事件：場上已經集齊了，再也摸不到了！",
		odds.Luck:       "🍀 只有 1 顆小石頭：全憑運氣啦。",
		odds.Good:       "💪 有好幾顆石頭：贏的機會很大哦！",
	},
	"en": {
		odds.Impossible: "⚠️ Impossible: every copy is already on the table!",
		odds.Luck:       "🍀 Only 1 stone left: it's all luck now.",
		odds.Good:       "💪 Several stones left: good chances!",
	},
}

// Language returns lang if it has a catalog, otherwise "zh"
func Language(lang string) string {
	if _, ok := catalog[lang]; ok {
		return lang
	}
	return "zh"
}

// Text returns the catalog entry for key
func Text(lang string, key Key) string {
	return catalog[Language(lang)][key]
}

// Reason returns the localized name of a winning pattern
func Reason(lang string, p rules.Pattern) string {
	return reasons[Language(lang)][p]
}
