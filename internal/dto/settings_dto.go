package dto

type UpdateSettingsRequest struct {
	NotificationsEnabled   *bool    `json:"notifications_enabled"`
	SoundEnabled           *bool    `json:"sound_enabled"`
	MusicVolume            *float64 `json:"music_volume"`
	DailyGoalMinutes       *int     `json:"daily_goal_minutes"`
	PreferredSessionLength *int     `json:"preferred_session_length"`
	BreakLength            *int     `json:"break_length"`
	Theme                  *string  `json:"theme"`
	AutoStartBreaks        *bool    `json:"auto_start_breaks"`
	ShowMotivationalQuotes *bool    `json:"show_motivational_quotes"`
	DailyReminder          *string  `json:"daily_reminder"`
	SessionEndReminder     *bool    `json:"session_end_reminder"`
	ReminderFrequency      *string  `json:"reminder_frequency"`
	PrivacyMode            *bool    `json:"privacy_mode"`
}

func (r *UpdateSettingsRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.NotificationsEnabled != nil {
		updates["notifications_enabled"] = *r.NotificationsEnabled
	}
	if r.SoundEnabled != nil {
		updates["sound_enabled"] = *r.SoundEnabled
	}
	if r.MusicVolume != nil {
		updates["music_volume"] = *r.MusicVolume
	}
	if r.DailyGoalMinutes != nil {
		updates["daily_goal_minutes"] = *r.DailyGoalMinutes
	}
	if r.PreferredSessionLength != nil {
		updates["preferred_session_length"] = *r.PreferredSessionLength
	}
	if r.BreakLength != nil {
		updates["break_length"] = *r.BreakLength
	}
	if r.Theme != nil {
		updates["theme"] = *r.Theme
	}
	if r.AutoStartBreaks != nil {
		updates["auto_start_breaks"] = *r.AutoStartBreaks
	}
	if r.ShowMotivationalQuotes != nil {
		updates["show_motivational_quotes"] = *r.ShowMotivationalQuotes
	}
	if r.DailyReminder != nil {
		updates["daily_reminder"] = *r.DailyReminder
	}
	if r.SessionEndReminder != nil {
		updates["session_end_reminder"] = *r.SessionEndReminder
	}
	if r.ReminderFrequency != nil {
		updates["reminder_frequency"] = *r.ReminderFrequency
	}
	if r.PrivacyMode != nil {
		updates["privacy_mode"] = *r.PrivacyMode
	}
	return updates
}

type CompleteOnboardingRequest struct {
	WeeklyFocusGoal *int    `json:"weekly_focus_goal"`
	FocusMethod     *string `json:"focus_method"`
	EducationLevel  *string `json:"education_level"`
}
