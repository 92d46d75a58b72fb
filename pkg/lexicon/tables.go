package lexicon

import "VoicePlay/internal/entity"

// Trigger binds one spoken phrase to a canonical command.
type Trigger struct {
	Phrase  string
	Command entity.Command
}

// Table order is significant: matching walks the slice and the first
// phrase contained in the utterance wins. Short generic phrases placed
// early intentionally shadow longer ones ("快轉" before "快轉三十秒"),
// which keeps behaviour stable for partial transcriptions.
func DefaultTables() map[string][]Trigger {
	return map[string][]Trigger{
		"zh-TW": {
			{"播放", entity.CommandPlay},
			{"開始", entity.CommandPlay},
			{"繼續", entity.CommandPlay},
			{"暫停", entity.CommandPause},
			{"停止", entity.CommandPause},
			{"快轉", entity.CommandForward10},
			{"快轉十秒", entity.CommandForward10},
			{"前進十秒", entity.CommandForward10},
			{"快轉三十秒", entity.CommandForward30},
			{"前進三十秒", entity.CommandForward30},
			{"快退", entity.CommandBackward10},
			{"快退十秒", entity.CommandBackward10},
			{"後退十秒", entity.CommandBackward10},
			{"快退三十秒", entity.CommandBackward30},
			{"後退三十秒", entity.CommandBackward30},
			{"音量加大", entity.CommandVolumeUp},
			{"音量增加", entity.CommandVolumeUp},
			{"大聲一點", entity.CommandVolumeUp},
			{"音量減小", entity.CommandVolumeDown},
			{"音量降低", entity.CommandVolumeDown},
			{"小聲一點", entity.CommandVolumeDown},
			{"全螢幕", entity.CommandFullscreen},
			{"全屏", entity.CommandFullscreen},
			{"退出全螢幕", entity.CommandExitFullscreen},
			{"退出全屏", entity.CommandExitFullscreen},
			{"重新播放", entity.CommandRestart},
			{"從頭開始", entity.CommandRestart},
			{"靜音", entity.CommandMute},
			{"取消靜音", entity.CommandUnmute},
		},
		"en": {
			{"play", entity.CommandPlay},
			{"start", entity.CommandPlay},
			{"resume", entity.CommandPlay},
			{"continue", entity.CommandPlay},
			{"pause", entity.CommandPause},
			{"stop", entity.CommandPause},
			{"forward", entity.CommandForward10},
			{"forward ten", entity.CommandForward10},
			{"forward 10", entity.CommandForward10},
			{"skip forward", entity.CommandForward10},
			{"forward thirty", entity.CommandForward30},
			{"forward 30", entity.CommandForward30},
			{"backward", entity.CommandBackward10},
			{"rewind", entity.CommandBackward10},
			{"backward ten", entity.CommandBackward10},
			{"backward 10", entity.CommandBackward10},
			{"skip backward", entity.CommandBackward10},
			{"backward thirty", entity.CommandBackward30},
			{"backward 30", entity.CommandBackward30},
			{"volume up", entity.CommandVolumeUp},
			{"louder", entity.CommandVolumeUp},
			{"increase volume", entity.CommandVolumeUp},
			{"volume down", entity.CommandVolumeDown},
			{"quieter", entity.CommandVolumeDown},
			{"decrease volume", entity.CommandVolumeDown},
			{"fullscreen", entity.CommandFullscreen},
			{"full screen", entity.CommandFullscreen},
			{"exit fullscreen", entity.CommandExitFullscreen},
			{"exit full screen", entity.CommandExitFullscreen},
			{"restart", entity.CommandRestart},
			{"start over", entity.CommandRestart},
			{"from beginning", entity.CommandRestart},
			{"mute", entity.CommandMute},
			{"unmute", entity.CommandUnmute},
		},
		"ja": {
			{"再生", entity.CommandPlay},
			{"開始", entity.CommandPlay},
			{"一時停止", entity.CommandPause},
			{"停止", entity.CommandPause},
			{"早送り", entity.CommandForward10},
			{"巻き戻し", entity.CommandBackward10},
			{"音量上げる", entity.CommandVolumeUp},
			{"音量下げる", entity.CommandVolumeDown},
			{"全画面", entity.CommandFullscreen},
			{"全画面解除", entity.CommandExitFullscreen},
			{"最初から", entity.CommandRestart},
			{"ミュート", entity.CommandMute},
			{"ミュート解除", entity.CommandUnmute},
		},
		"ko": {
			{"재생", entity.CommandPlay},
			{"시작", entity.CommandPlay},
			{"일시정지", entity.CommandPause},
			{"정지", entity.CommandPause},
			{"빨리감기", entity.CommandForward10},
			{"되감기", entity.CommandBackward10},
			{"볼륨올리기", entity.CommandVolumeUp},
			{"볼륨내리기", entity.CommandVolumeDown},
			{"전체화면", entity.CommandFullscreen},
			{"전체화면종료", entity.CommandExitFullscreen},
			{"처음부터", entity.CommandRestart},
			{"음소거", entity.CommandMute},
			{"음소거해제", entity.CommandUnmute},
		},
		"es": {
			{"reproducir", entity.CommandPlay},
			{"iniciar", entity.CommandPlay},
			{"pausar", entity.CommandPause},
			{"detener", entity.CommandPause},
			{"adelantar", entity.CommandForward10},
			{"retroceder", entity.CommandBackward10},
			{"subir volumen", entity.CommandVolumeUp},
			{"bajar volumen", entity.CommandVolumeDown},
			{"pantalla completa", entity.CommandFullscreen},
			{"salir pantalla completa", entity.CommandExitFullscreen},
			{"reiniciar", entity.CommandRestart},
			{"silenciar", entity.CommandMute},
			{"activar sonido", entity.CommandUnmute},
		},
		"fr": {
			{"jouer", entity.CommandPlay},
			{"démarrer", entity.CommandPlay},
			{"pause", entity.CommandPause},
			{"arrêter", entity.CommandPause},
			{"avancer", entity.CommandForward10},
			{"reculer", entity.CommandBackward10},
			{"augmenter volume", entity.CommandVolumeUp},
			{"diminuer volume", entity.CommandVolumeDown},
			{"plein écran", entity.CommandFullscreen},
			{"quitter plein écran", entity.CommandExitFullscreen},
			{"recommencer", entity.CommandRestart},
			{"couper le son", entity.CommandMute},
			{"réactiver le son", entity.CommandUnmute},
		},
		"de": {
			{"abspielen", entity.CommandPlay},
			{"starten", entity.CommandPlay},
			{"pause", entity.CommandPause},
			{"stoppen", entity.CommandPause},
			{"vorspulen", entity.CommandForward10},
			{"zurückspulen", entity.CommandBackward10},
			{"lautstärke erhöhen", entity.CommandVolumeUp},
			{"lautstärke verringern", entity.CommandVolumeDown},
			{"vollbild", entity.CommandFullscreen},
			{"vollbild verlassen", entity.CommandExitFullscreen},
			{"neu starten", entity.CommandRestart},
			{"stumm schalten", entity.CommandMute},
			{"stummschaltung aufheben", entity.CommandUnmute},
		},
	}
}

// DefaultDescriptions are deliberately sparser than the keyword tables;
// locales without an entry fall back to English labels.
func DefaultDescriptions() map[string]map[entity.Command]string {
	return map[string]map[entity.Command]string{
		"zh-TW": {
			entity.CommandPlay:           "播放影片",
			entity.CommandPause:          "暫停影片",
			entity.CommandForward10:      "快轉 10 秒",
			entity.CommandBackward10:     "快退 10 秒",
			entity.CommandForward30:      "快轉 30 秒",
			entity.CommandBackward30:     "快退 30 秒",
			entity.CommandVolumeUp:       "音量增加",
			entity.CommandVolumeDown:     "音量減小",
			entity.CommandFullscreen:     "進入全螢幕",
			entity.CommandExitFullscreen: "退出全螢幕",
			entity.CommandRestart:        "重新播放",
			entity.CommandSpeed:          "調整播放速度",
			entity.CommandMute:           "靜音",
			entity.CommandUnmute:         "取消靜音",
			entity.CommandUnknown:        "未知指令",
		},
		"en": {
			entity.CommandPlay:           "Play video",
			entity.CommandPause:          "Pause video",
			entity.CommandForward10:      "Forward 10 seconds",
			entity.CommandBackward10:     "Backward 10 seconds",
			entity.CommandForward30:      "Forward 30 seconds",
			entity.CommandBackward30:     "Backward 30 seconds",
			entity.CommandVolumeUp:       "Volume up",
			entity.CommandVolumeDown:     "Volume down",
			entity.CommandFullscreen:     "Enter fullscreen",
			entity.CommandExitFullscreen: "Exit fullscreen",
			entity.CommandRestart:        "Restart video",
			entity.CommandSpeed:          "Change playback speed",
			entity.CommandMute:           "Mute",
			entity.CommandUnmute:         "Unmute",
			entity.CommandUnknown:        "Unknown command",
		},
	}
}
