// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoticeLevel is the severity of an admin notice.
type NoticeLevel string

const (
	NoticeLevelNotice  NoticeLevel = "notice"
	NoticeLevelWarning NoticeLevel = "warning"
	NoticeLevelError   NoticeLevel = "error"
)

// Notice is a message shown to administrators, such as a deprecated
// constant being in use.
type Notice struct {
	// Key identifies the notice. Adding a notice with a key that is already
	// collected replaces the earlier one.
	Key     string      `json:"key"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Level   NoticeLevel `json:"level"`
}
