package domain

import "errors"

var (
	// プロファイル関連エラー
	ErrProfileNotFound = errors.New("candidate profile not found")
	ErrAgencyNotFound  = errors.New("agency record not found")

	// 認証関連エラー
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidUserContext = errors.New("invalid user context")

	// フィード関連エラー
	ErrInvalidCategory = errors.New("invalid feed category")
	ErrInvalidCursor   = errors.New("invalid pagination cursor")
)
