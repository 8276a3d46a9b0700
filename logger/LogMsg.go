package logger

const SessionStartMsg = "本地對戰開始 screen: %.0fx%.0f frame: %s"
const SessionQuitMsg = "玩家按下離開，本地對戰結束"

const BallServedMsg = "發球 position: %s velocity: %s"
const KeyIgnoredMsg = "忽略按鍵 %s"

const KeyReleasedMsg = "按鍵 %s 超過 %s 未重複，視為放開"
