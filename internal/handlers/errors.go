package handlers

var (
	MsgInvalidRequest = "잘못된 요청입니다. 페이지를 새로고침한 후 다시 시도해주세요."
)
