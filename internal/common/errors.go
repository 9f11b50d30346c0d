// Package common — errors.go defines the sentinel errors shared by every
// feature. Handlers switch on these to pick the reply text for the operator.
package common

import "errors"

// Parsing and validation errors
var (
	// ErrInvalidAmount — the token does not parse as a money amount
	ErrInvalidAmount = errors.New("số tiền không hợp lệ")
	// ErrUnknownWallet — the wallet name is not one of momo/bank/tienmat
	ErrUnknownWallet = errors.New("tên ví không hợp lệ")
	// ErrNotAdmin — the sender is not the configured admin
	ErrNotAdmin = errors.New("bạn không có quyền dùng lệnh này")
)

// Lookup errors — surfaced before any mutation happens
var (
	// ErrInviteNotFound — no pending invite matches (channel, person)
	ErrInviteNotFound = errors.New("không tìm thấy lời mời đang chờ")
	// ErrDeviceNotFound — no device row matches the code
	ErrDeviceNotFound = errors.New("không tìm thấy máy")
	// ErrLotNotFound — no lot has been recorded yet
	ErrLotNotFound = errors.New("không tìm thấy lô máy")
)
