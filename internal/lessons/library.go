package lessons

import "github.com/hajira/edumood/internal/mood"

// library is the curated two-level lesson table keyed by mood, then by
// recommendation title. Titles absent here fall through to the generic
// fallback in Expand.
var library = map[mood.Mood]map[string]Document{
	mood.Happy: {
		"Creative Problem Solving Workshop": {
			Introduction: "Welcome to the Creative Problem Solving Workshop! Your positive energy is perfect for exploring innovative thinking techniques. Let's channel that enthusiasm into breakthrough solutions.",
			Sections: []Section{
				{
					Title: "The Creative Mindset",
					Body:  "Creative problem solving starts with embracing curiosity and optimism. When you're in a positive mood, your brain is more open to making unexpected connections and seeing possibilities others might miss.",
					Tips: []string{
						"Ask 'What if?' questions frequently",
						"Embrace wild ideas without immediate judgment",
						"Look for patterns in unrelated fields",
						"Use your positive energy to fuel brainstorming",
					},
				},
				{
					Title: "Brainstorming Techniques",
					Body:  "Effective brainstorming leverages your current positive state. Here are proven methods to generate innovative solutions:",
					Tips: []string{
						"Mind mapping: Start with your problem in the center",
						"SCAMPER method: Substitute, Combine, Adapt, Modify, Put to other uses, Eliminate, Reverse",
						"Six thinking hats: Explore different perspectives",
						"Rapid ideation: Set a timer for 10 minutes and generate as many ideas as possible",
					},
				},
				{
					Title: "Implementation Strategy",
					Body:  "Transform your creative ideas into actionable solutions. Your positive mindset gives you the confidence to take risks and try new approaches.",
					CodeSample: `// Creative Problem Solving Framework
function solveProblem(problem) {
  const ideas = brainstorm(problem);
  const filtered = filterIdeas(ideas);
  const prototype = createPrototype(filtered[0]);
  return testAndIterate(prototype);
}

function brainstorm(problem) {
  // Generate multiple creative solutions
  return ideas.map(idea => ({
    concept: idea,
    feasibility: assessFeasibility(idea),
    impact: assessImpact(idea)
  }));
}`,
				},
			},
			Exercises: []Exercise{
				{
					Question: "Think of a current challenge you're facing. Use the SCAMPER method to generate 3 different approaches to solve it.",
					Answer:   "This is a reflection exercise. Consider how you can Substitute elements, Combine different approaches, Adapt existing solutions, Modify current methods, Put the problem to other uses, Eliminate unnecessary parts, or Reverse the typical approach.",
					Kind:     KindReflection,
				},
			},
			Resources: []Resource{
				{Title: "Creative Confidence by IDEO", URL: "https://www.ideo.com/post/creative-confidence", ResourceType: "Article"},
				{Title: "Brainstorming Toolkit", URL: "https://www.designkit.org/methods", ResourceType: "Toolkit"},
			},
			Conclusion: "Your positive energy is a powerful catalyst for creative problem solving. Keep nurturing that optimistic mindset and remember that every great solution started with someone willing to think differently!",
		},
		"Team Leadership Masterclass": {
			Introduction: "Your positive energy makes you a natural leader! This masterclass will help you harness that enthusiasm to inspire and guide teams effectively.",
			Sections: []Section{
				{
					Title: "Positive Leadership Principles",
					Body:  "Great leaders spread positivity and create environments where teams thrive. Your current mood is perfect for learning these essential leadership skills.",
					Tips: []string{
						"Lead by example with your positive attitude",
						"Celebrate small wins to maintain team morale",
						"Practice active listening and empathy",
						"Provide constructive feedback with encouragement",
					},
				},
				{
					Title: "Communication Strategies",
					Body:  "Effective communication is the cornerstone of leadership. Learn how to convey your vision clearly and inspire others to follow.",
					Tips: []string{
						"Use 'we' language to build team unity",
						"Ask open-ended questions to encourage participation",
						"Share your enthusiasm for the project's goals",
						"Adapt your communication style to different team members",
					},
				},
			},
			Exercises: []Exercise{
				{
					Question: "What are the three most important qualities of a positive leader?",
					Options: []string{
						"Empathy, Vision, Integrity",
						"Authority, Control, Efficiency",
						"Intelligence, Speed, Perfection",
						"Charisma, Wealth, Experience",
					},
					Answer: "Empathy, Vision, Integrity",
					Kind:   KindMultipleChoice,
				},
			},
			Conclusion: "Your positive energy is your greatest leadership asset. Use it to inspire, motivate, and create positive change in your team and organization!",
		},
	},
	mood.Neutral: {
		"Deep Learning Fundamentals": {
			Introduction: "Your focused, neutral state is perfect for absorbing complex technical concepts. Let's dive deep into the fascinating world of neural networks and artificial intelligence.",
			Sections: []Section{
				{
					Title: "What is Deep Learning?",
					Body:  "Deep learning is a subset of machine learning that uses artificial neural networks with multiple layers to model and understand complex patterns in data. It's inspired by how the human brain processes information.",
					Tips: []string{
						"Think of neural networks as interconnected nodes, like neurons",
						"Each layer learns increasingly complex features",
						"Deep learning excels at pattern recognition",
						"It requires large amounts of data to train effectively",
					},
				},
				{
					Title: "Neural Network Architecture",
					Body:  "Understanding the basic structure of neural networks is crucial. Each network consists of input layers, hidden layers, and output layers.",
					CodeSample: `import tensorflow as tf
from tensorflow import keras

# Simple neural network model
model = keras.Sequential([
    keras.layers.Dense(128, activation='relu', input_shape=(784,)),
    keras.layers.Dropout(0.2),
    keras.layers.Dense(64, activation='relu'),
    keras.layers.Dense(10, activation='softmax')
])

model.compile(optimizer='adam',
              loss='sparse_categorical_crossentropy',
              metrics=['accuracy'])`,
					Tips: []string{
						"Start with simple architectures before going complex",
						"Activation functions introduce non-linearity",
						"Dropout helps prevent overfitting",
						"Choose the right optimizer for your problem",
					},
				},
				{
					Title: "Training Process",
					Body:  "Training a neural network involves feeding it data, calculating errors, and adjusting weights through backpropagation. This process repeats until the model learns the patterns.",
					Tips: []string{
						"Split your data into training, validation, and test sets",
						"Monitor both training and validation loss",
						"Use early stopping to prevent overfitting",
						"Experiment with different learning rates",
					},
				},
			},
			Exercises: []Exercise{
				{
					Question: "Write a simple Python function that implements a basic perceptron (single neuron) with sigmoid activation.",
					Answer: `def perceptron(inputs, weights, bias):
    import math
    weighted_sum = sum(x * w for x, w in zip(inputs, weights)) + bias
    return 1 / (1 + math.exp(-weighted_sum))  # Sigmoid activation`,
					Kind: KindCoding,
				},
			},
			Conclusion: "Deep learning is a powerful tool that's revolutionizing AI. Your methodical approach to learning these concepts will serve you well as you explore more advanced topics!",
		},
	},
	mood.Sad: {
		"Fun Python Projects": {
			Introduction: "Sometimes when we're feeling down, the best medicine is creating something fun and engaging. Let's build some delightful Python projects that will lift your spirits and boost your confidence!",
			Sections: []Section{
				{
					Title: "Simple Calculator",
					Body:  "Let's start with a friendly calculator that can perform basic operations. Building something functional always feels rewarding!",
					CodeSample: `def calculator():
    print("🧮 Welcome to your friendly calculator! 🧮")

    while True:
        try:
            num1 = float(input("Enter first number: "))
            operation = input("Choose operation (+, -, *, /) or 'quit': ")

            if operation == 'quit':
                print("Thanks for calculating with me! 😊")
                break

            num2 = float(input("Enter second number: "))

            if operation == '+':
                result = num1 + num2
            elif operation == '-':
                result = num1 - num2
            elif operation == '*':
                result = num1 * num2
            elif operation == '/':
                result = num1 / num2 if num2 != 0 else "Cannot divide by zero!"

            print(f"Result: {result} ✨")

        except ValueError:
            print("Please enter valid numbers! 🤗")

calculator()`,
					Tips: []string{
						"Add colorful emojis to make it more cheerful",
						"Include error handling for a smooth experience",
						"Consider adding more operations like square root",
						"Make the interface friendly and encouraging",
					},
				},
				{
					Title: "Mood Tracker",
					Body:  "Create a simple mood tracking app that helps you monitor your emotional journey. Sometimes seeing patterns can be surprisingly uplifting!",
					CodeSample: `import datetime
import json

def mood_tracker():
    moods = []

    print("🌈 Daily Mood Tracker 🌈")
    print("Track your feelings and see your progress!")

    while True:
        action = input("\n1. Log mood\n2. View history\n3. Quit\nChoose: ")

        if action == '1':
            mood = input("How are you feeling? (1-10): ")
            note = input("Any notes about today? ")

            entry = {
                'date': str(datetime.date.today()),
                'mood': mood,
                'note': note
            }
            moods.append(entry)
            print("Mood logged! You're doing great! 🌟")

        elif action == '2':
            print("\n📊 Your Mood History:")
            for entry in moods:
                print(f"{entry['date']}: {entry['mood']}/10 - {entry['note']}")

        elif action == '3':
            print("Keep tracking your journey! You've got this! 💪")
            break

mood_tracker()`,
				},
			},
			Exercises: []Exercise{
				{
					Question: "Create a simple compliment generator that displays a random encouraging message each time it's run.",
					Answer: `import random

compliments = [
    "You're doing amazing! 🌟",
    "Your code is getting better every day! 💻",
    "You have great problem-solving skills! 🧩",
    "Keep up the fantastic work! 🚀",
    "You're more capable than you know! 💪"
]

def compliment_generator():
    return random.choice(compliments)

print(compliment_generator())`,
					Kind: KindCoding,
				},
			},
			Conclusion: "Remember, every expert was once a beginner. These small projects are building blocks to bigger achievements. You're doing better than you think! 🌈",
		},
	},
	mood.Angry: {
		"Emotional Intelligence Mastery": {
			Introduction: "Your intense feelings right now are actually a powerful source of energy. Let's learn how to channel that intensity into emotional intelligence and better decision-making.",
			Sections: []Section{
				{
					Title: "Understanding Your Emotions",
					Body:  "Anger often signals that something important to you is being threatened or violated. Instead of suppressing it, let's learn to understand and redirect this energy constructively.",
					Tips: []string{
						"Recognize anger as information, not just emotion",
						"Identify the underlying need or value being threatened",
						"Use the energy to fuel positive change",
						"Practice the pause between trigger and response",
					},
				},
				{
					Title: "The STOP Technique",
					Body:  "When you feel anger rising, use this powerful technique to regain control and respond thoughtfully rather than react impulsively.",
					Tips: []string{
						"S - Stop what you're doing",
						"T - Take a deep breath",
						"O - Observe your thoughts and feelings",
						"P - Proceed with intention and wisdom",
					},
				},
				{
					Title: "Transforming Anger into Action",
					Body:  "Your anger can be a catalyst for positive change. Learn to harness this energy to solve problems and improve situations.",
					CodeSample: `// Emotional Processing Algorithm
function processEmotion(trigger, intensity) {
  const analysis = {
    trigger: trigger,
    intensity: intensity,
    underlyingNeed: identifyNeed(trigger),
    actionPlan: createActionPlan(trigger)
  };

  return {
    emotion: 'anger',
    energy: intensity,
    constructiveAction: analysis.actionPlan,
    growth: 'increased emotional intelligence'
  };
}

function identifyNeed(trigger) {
  // What value or need is being threatened?
  return analyzeCore(trigger);
}`,
				},
			},
			Exercises: []Exercise{
				{
					Question: "Think about what triggered your current anger. What underlying need or value might be threatened? How can you address this constructively?",
					Answer:   "This is a personal reflection. Consider whether it's about fairness, respect, autonomy, security, or another core value. Then think of one constructive action you can take to address the root cause.",
					Kind:     KindReflection,
				},
			},
			Conclusion: "Your anger is not your enemy - it's information and energy. Use it wisely, and it becomes a powerful tool for positive change and personal growth.",
		},
	},
	mood.Tired: {
		"Quick Learning Bites": {
			Introduction: "When energy is low, we can still make meaningful progress with bite-sized learning. These micro-lessons are designed to be gentle on your tired mind while still being valuable.",
			Sections: []Section{
				{
					Title: "The Power of Micro-Learning",
					Body:  "Research shows that learning in small chunks can be more effective than long study sessions, especially when you're tired. Your brain can process and retain information better in short bursts.",
					Tips: []string{
						"Focus on one concept at a time",
						"Use the Pomodoro technique: 10 minutes learning, 5 minutes rest",
						"Choose visual or audio content when reading feels difficult",
						"Celebrate small wins to maintain motivation",
					},
				},
				{
					Title: "5-Minute Productivity Hack",
					Body:  "Even when tired, you can boost your productivity with this simple technique that works with your low energy rather than against it.",
					Tips: []string{
						"Choose the easiest task on your list",
						"Set a timer for just 5 minutes",
						"Give yourself permission to stop after 5 minutes",
						"Often you'll find you want to continue once you start",
					},
				},
				{
					Title: "Gentle Learning Strategies",
					Body:  "When your energy is low, adapt your learning style to match your current capacity. This isn't giving up - it's being smart about your resources.",
					CodeSample: `// Energy-Adaptive Learning Function
function adaptLearning(energyLevel) {
  if (energyLevel < 3) {
    return {
      method: 'passive',
      duration: '5-10 minutes',
      content: ['audio', 'visual', 'review'],
      breaks: 'frequent'
    };
  } else if (energyLevel < 6) {
    return {
      method: 'light-active',
      duration: '15-20 minutes',
      content: ['reading', 'simple exercises'],
      breaks: 'regular'
    };
  }
  // Higher energy levels...
}`,
				},
			},
			Exercises: []Exercise{
				{
					Question: "What's one small thing you can learn or accomplish in the next 5 minutes that would make you feel good?",
					Answer:   "This could be reading one article paragraph, organizing one folder, writing one sentence, or learning one new word. The key is choosing something achievable that gives you a sense of progress.",
					Kind:     KindReflection,
				},
			},
			Conclusion: "Rest is productive too. By honoring your energy levels and learning gently, you're building sustainable habits that will serve you well in the long run.",
		},
	},
}
