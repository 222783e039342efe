package bot

import (
	"fmt"

	"github.com/undefined7887/ai2024-applied-python-hw2/internal/models"
)

// Тексты ответов. Разметка (<b>, эмодзи) косметическая и отправляется
// в Telegram с parse_mode=HTML.

const commandsText = `You now have access to the following commands:
📋 <b>/profile</b> — Show your profile
🛠 <b>/set_profile</b> — Update your profile
💧 <b>/log_water</b> — Log your water intake
🍎 <b>/log_food</b> — Log your food intake
🏋️‍♂️ <b>/log_workout</b> — Log your workout
📈 <b>/current_progress</b> — Show your current progress`

const (
	replyNoProfile          = "You haven't set your profile yet, use <b>/set_profile</b> command"
	replyUnknownCommand     = "Unknown command, consider using <b>/start</b>"
	replyWeatherUnavailable = "⚠️ Could not fetch today's weather for your city, try again later"
	replyBadCity            = "Please enter a correct city name:"
	replyBadValue           = "Please enter a correct value:"
)

func replyBadNumber(minVal, maxVal int) string {
	return fmt.Sprintf("Please enter a correct number between %d and %d:", minVal, maxVal)
}

func replyStart(name string, hasProfile bool) string {
	greeting := fmt.Sprintf("<b>Hello, %s</b> 👋\nI'm your personal fitness assistant", name)
	if hasProfile {
		return greeting + "\n\n" + commandsText
	}
	return greeting + "\n\nTo get started, set up your profile with <b>/set_profile</b>"
}

func replyProfile(user *models.User) string {
	return fmt.Sprintf(`🌟 Your Profile 🌟

<b>%s, %d years old, %s</b>

📏 <b>Weight:</b> %d kg
📐 <b>Height:</b> %d cm
🏃‍♂️ <b>Daily Activity:</b> %d minutes`,
		user.Name, user.Age, user.City, user.Weight, user.Height, user.Activity)
}

func replyProfileSet() string {
	return "🎉 <b>Profile Successfully Set!</b> 🎉\n\n" + commandsText
}

func replyWaterLogged(log *models.DailyLog) string {
	return fmt.Sprintf("💧 <b>Water Intake Logged!</b> 💧\n\nWater consumed: %d of %d ml",
		log.Water(), log.WaterGoal())
}

func replyFoodLogged(log *models.DailyLog) string {
	return fmt.Sprintf("🍎 <b>Food Intake Logged!</b> 🍎\n\nCalories consumed: %d of %v calories",
		log.Calories(), log.CalorieGoal())
}

func replyWorkoutLogged(log *models.DailyLog) string {
	if extra := log.WaterAddedByWorkout(); extra > 0 {
		return fmt.Sprintf("🏋️‍♂️ <b>Workout Logged!</b> 🏋️‍♂️\n\nNote: Drink additional %d ml of water today", extra)
	}
	return "🏋️‍♂️ <b>Workout Logged!</b> 🏋️‍♂️"
}

func replyProgress(user *models.User, log *models.DailyLog) string {
	tempText := fmt.Sprintf("Today's temperature in %s is %v°C", user.City, log.Temperature)
	if log.Temperature > 25 {
		tempText += "\nYou should drink more water today"
	}

	return fmt.Sprintf(`📈 <b>Your Current Progress</b> 📈
%s

💧 <b>Water:</b>
Water consumed: %d of %d ml
Water added by workout: %d ml

🍎 <b>Calories:</b>
Calories consumed: %d of %v calories
Calories burned: %d calories
Calories added by workout: %d calories

🏋️‍♂️ <b>Workout:</b>
Workouts: %d
Total duration: %d minutes`,
		tempText,
		log.Water(), log.WaterGoal(), log.WaterAddedByWorkout(),
		log.Calories(), log.CalorieGoal(), log.CalorieBurned(), log.CalorieAddedByWorkout(),
		log.WorkoutCount(), log.WorkoutMinutes())
}
