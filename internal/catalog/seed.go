package catalog

import "github.com/hajira/edumood/internal/mood"

// byMood is the curated recommendation table.
var byMood = map[mood.Mood][]Summary{
	mood.Happy: {
		{
			Title:       "Creative Problem Solving Workshop",
			Description: "Channel your positive energy into innovative thinking techniques and brainstorming methods.",
			ContentType: "Interactive Course",
			Duration:    "25 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Team Leadership Masterclass",
			Description: "Learn to spread positivity and lead effective group projects with confidence.",
			ContentType: "Video Series",
			Duration:    "35 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Public Speaking Confidence",
			Description: "Use your upbeat mood to master the art of presentation and communication.",
			ContentType: "Live Workshop",
			Duration:    "40 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Innovation Challenge",
			Description: "Participate in creative challenges that spark new ideas and solutions.",
			ContentType: "Code Playground",
			Duration:    "30 mins",
			Link:        GeneratedLink,
		},
	},
	mood.Neutral: {
		{
			Title:       "Deep Learning Fundamentals",
			Description: "Perfect focus state for absorbing complex AI concepts and neural networks.",
			ContentType: "Article Series",
			Duration:    "45 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Data Analysis with Python",
			Description: "Methodical approach to understanding data patterns and statistical analysis.",
			ContentType: "Code Tutorial",
			Duration:    "50 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Research Methodology Guide",
			Description: "Build systematic thinking and analytical skills for academic success.",
			ContentType: "Downloadable PDF",
			Duration:    "30 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Algorithm Design Patterns",
			Description: "Learn efficient problem-solving approaches in computer science.",
			ContentType: "Interactive Course",
			Duration:    "60 mins",
			Link:        GeneratedLink,
		},
	},
	mood.Sad: {
		{
			Title:       "Fun Python Projects",
			Description: "Try small creative projects like a calculator or quiz game to lift your spirits.",
			ContentType: "Code Playground",
			Duration:    "20 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Motivational TED Talk",
			Description: "Watch an inspiring talk on growth through learning and overcoming challenges.",
			ContentType: "Video",
			Duration:    "18 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Self-Care Checklist for Learners",
			Description: "Simple steps to balance stress and study while maintaining mental wellness.",
			ContentType: "Downloadable PDF",
			Duration:    "5 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Mindfulness & Focus Meditation",
			Description: "Gentle introduction to concentration and self-awareness practices.",
			ContentType: "Audio Guide",
			Duration:    "15 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Personal Growth Stories",
			Description: "Inspiring journeys of resilience and transformation from real people.",
			ContentType: "Article",
			Duration:    "12 mins",
			Link:        GeneratedLink,
		},
	},
	mood.Angry: {
		{
			Title:       "Emotional Intelligence Mastery",
			Description: "Transform intense feelings into productive energy and better decision-making.",
			ContentType: "Interactive Course",
			Duration:    "25 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Conflict Resolution Strategies",
			Description: "Channel frustration into effective problem-solving and communication skills.",
			ContentType: "Video Workshop",
			Duration:    "30 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Stress Management Techniques",
			Description: "Learn healthy ways to process and redirect strong emotions.",
			ContentType: "Article",
			Duration:    "15 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Physical Wellness Break",
			Description: "Movement and exercise routines to release tension productively.",
			ContentType: "Video Guide",
			Duration:    "20 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Assertiveness Training",
			Description: "Learn to express yourself clearly and confidently in challenging situations.",
			ContentType: "Interactive Course",
			Duration:    "35 mins",
			Link:        GeneratedLink,
		},
	},
	mood.Tired: {
		{
			Title:       "Quick Learning Bites",
			Description: "Bite-sized lessons perfect for low-energy moments and easy absorption.",
			ContentType: "Micro-Learning",
			Duration:    "10 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Relaxing Audio Learning",
			Description: "Passive learning through engaging podcasts and soothing educational content.",
			ContentType: "Podcast",
			Duration:    "25 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Gentle Productivity Tips",
			Description: "Low-intensity skills for maintaining momentum without overwhelming yourself.",
			ContentType: "Article",
			Duration:    "8 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Power Nap Science",
			Description: "Learn the optimal way to rest and recharge for better learning.",
			ContentType: "Video",
			Duration:    "12 mins",
			Link:        GeneratedLink,
		},
		{
			Title:       "Energy Boosting Snacks Guide",
			Description: "Nutrition tips to naturally increase your energy and focus.",
			ContentType: "Downloadable PDF",
			Duration:    "5 mins",
			Link:        GeneratedLink,
		},
	},
}
