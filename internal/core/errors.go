package core

// Fixed notice texts for rejections. Authorization failures are deliberately
// generic and admin-only commands from non-admins produce nothing at all.
const (
	NoticeNameLength   = "Name must be 3-20 characters."
	NoticeNameReserved = "That name is not allowed."
	NoticeNameTaken    = "Username is already taken."
	NoticeMuted        = "You are muted and cannot send messages."
	NoticeBlocked      = "Your message was blocked."
	NoticeAdminFailed  = "Admin authentication failed."
)

// reservedName cannot be claimed by anyone; it collides with second-person
// phrasing in client UIs.
const reservedName = "you"
