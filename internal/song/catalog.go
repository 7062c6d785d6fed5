package song

// Catalog is the fixed daily rotation of 40 classic 80s hits.
var Catalog = []Song{
	{
		ID: 1, Title: "Take On Me", Artist: "a-ha", Year: 1985,
		Hints: Hints{
			Emoji:  "🎹🏃‍♂️📰",
			Lyric:  "I'll be gone in a day or two",
			Trivia: "Famous for its pencil-sketch rotoscope music video",
		},
	},
	{
		ID: 2, Title: "Sweet Child O' Mine", Artist: "Guns N' Roses", Year: 1987,
		Hints: Hints{
			Emoji:  "🌹👶🎸",
			Lyric:  "She's got eyes of the bluest skies",
			Trivia: "Axl Rose wrote it about his girlfriend Erin Everly",
		},
	},
	{
		ID: 3, Title: "Billie Jean", Artist: "Michael Jackson", Year: 1983,
		Hints: Hints{
			Emoji:  "🕺💫🌙",
			Lyric:  "The kid is not my son",
			Trivia: "First video by a Black artist to be aired on MTV",
		},
	},
	{
		ID: 4, Title: "Girls Just Want to Have Fun", Artist: "Cyndi Lauper", Year: 1983,
		Hints: Hints{
			Emoji:  "👩‍🎤🎉🌈",
			Lyric:  "Some people think I'm crazy",
			Trivia: "Originally written and recorded by Robert Hazard in 1979",
		},
	},
	{
		ID: 5, Title: "Don't Stop Believin'", Artist: "Journey", Year: 1981,
		Hints: Hints{
			Emoji:  "🚂🌃⭐",
			Lyric:  "Just a small town girl, living in a lonely world",
			Trivia: "Most downloaded song from the 20th century",
		},
	},
	{
		ID: 6, Title: "Every Breath You Take", Artist: "The Police", Year: 1983,
		Hints: Hints{
			Emoji:  "👁️‍🗨️👀💔",
			Lyric:  "Every move you make, every step you take",
			Trivia: "Often misunderstood as a love song, it's actually about stalking",
		},
	},
	{
		ID: 7, Title: "Livin' on a Prayer", Artist: "Bon Jovi", Year: 1986,
		Hints: Hints{
			Emoji:  "🙏💪⚡",
			Lyric:  "Tommy used to work on the docks",
			Trivia: "Features a talk box effect by Richie Sambora",
		},
	},
	{
		ID: 8, Title: "I Want Candy", Artist: "Bow Wow Wow", Year: 1982,
		Hints: Hints{
			Emoji:  "🍭😋💕",
			Lyric:  "I want candy, I want candy",
			Trivia: "Originally recorded by The Strangeloves in 1965",
		},
	},
	{
		ID: 9, Title: "Flashdance... What a Feeling", Artist: "Irene Cara", Year: 1983,
		Hints: Hints{
			Emoji:  "💃✨🔥",
			Lyric:  "Take your passion and make it happen",
			Trivia: "Won the Academy Award for Best Original Song",
		},
	},
	{
		ID: 10, Title: "Africa", Artist: "Toto", Year: 1982,
		Hints: Hints{
			Emoji:  "🌍🌧️🥁",
			Lyric:  "I bless the rains down in Africa",
			Trivia: "Became a viral meme and was covered by Weezer in 2018",
		},
	},
	{
		ID: 11, Title: "Eye of the Tiger", Artist: "Survivor", Year: 1982,
		Hints: Hints{
			Emoji:  "🐅👁️🥊",
			Lyric:  "Rising up to the challenge of our rival",
			Trivia: "Written for Rocky III after Queen declined to let them use 'Another One Bites the Dust'",
		},
	},
	{
		ID: 12, Title: "Total Eclipse of the Heart", Artist: "Bonnie Tyler", Year: 1983,
		Hints: Hints{
			Emoji:  "🌙💔🌟",
			Lyric:  "Turn around bright eyes",
			Trivia: "Originally written for a vampire musical called 'Nosferatu'",
		},
	},
	{
		ID: 13, Title: "Material Girl", Artist: "Madonna", Year: 1984,
		Hints: Hints{
			Emoji:  "💎👑💰",
			Lyric:  "'Cause we are living in a material world",
			Trivia: "Music video pays homage to Marilyn Monroe's 'Diamonds Are a Girl's Best Friend'",
		},
	},
	{
		ID: 14, Title: "Purple Rain", Artist: "Prince", Year: 1984,
		Hints: Hints{
			Emoji:  "🟣🌧️🎸",
			Lyric:  "I only wanted to see you underneath the purple rain",
			Trivia: "The guitar solo was recorded live at a small Minneapolis club",
		},
	},
	{
		ID: 15, Title: "Hungry Like the Wolf", Artist: "Duran Duran", Year: 1981,
		Hints: Hints{
			Emoji:  "🐺🏃‍♂️🌙",
			Lyric:  "Darken the city, night is a wire",
			Trivia: "Music video was filmed in Sri Lanka and Antigua",
		},
	},
	{
		ID: 16, Title: "Sweet Dreams (Are Made of This)", Artist: "Eurythmics", Year: 1983,
		Hints: Hints{
			Emoji:  "😴💭🌟",
			Lyric:  "Who am I to disagree?",
			Trivia: "Annie Lennox's androgynous look in the video was groundbreaking",
		},
	},
	{
		ID: 17, Title: "Beat It", Artist: "Michael Jackson", Year: 1983,
		Hints: Hints{
			Emoji:  "🎸⚡👊",
			Lyric:  "No one wants to be defeated",
			Trivia: "Features guitar work by Eddie Van Halen",
		},
	},
	{
		ID: 18, Title: "Time After Time", Artist: "Cyndi Lauper", Year: 1984,
		Hints: Hints{
			Emoji:  "⏰💕🔄",
			Lyric:  "If you're lost you can look and you will find me",
			Trivia: "Co-written with Rob Hyman from The Hooters",
		},
	},
	{
		ID: 19, Title: "Footloose", Artist: "Kenny Loggins", Year: 1984,
		Hints: Hints{
			Emoji:  "👟🕺🎵",
			Lyric:  "Been working so hard, I'm punching my card",
			Trivia: "Written specifically for the movie of the same name",
		},
	},
	{
		ID: 20, Title: "Another One Bites the Dust", Artist: "Queen", Year: 1980,
		Hints: Hints{
			Emoji:  "👑💀🎸",
			Lyric:  "Steve walks warily down the street",
			Trivia: "Became Queen's biggest hit in the United States",
		},
	},
	{
		ID: 21, Title: "Tainted Love", Artist: "Soft Cell", Year: 1981,
		Hints: Hints{
			Emoji:  "💔🖤⛓️",
			Lyric:  "Sometimes I feel I've got to run away",
			Trivia: "Originally recorded by Gloria Jones in 1964",
		},
	},
	{
		ID: 22, Title: "Karma Chameleon", Artist: "Culture Club", Year: 1983,
		Hints: Hints{
			Emoji:  "🦎🌈🎭",
			Lyric:  "You come and go, you come and go",
			Trivia: "Boy George's look challenged gender norms in mainstream music",
		},
	},
	{
		ID: 23, Title: "Mickey", Artist: "Toni Basil", Year: 1982,
		Hints: Hints{
			Emoji:  "📣💃🏀",
			Lyric:  "Oh Mickey, you're so fine",
			Trivia: "Toni Basil was a professional choreographer and dancer",
		},
	},
	{
		ID: 24, Title: "99 Luftballons", Artist: "Nena", Year: 1983,
		Hints: Hints{
			Emoji:  "🎈🌍💥",
			Lyric:  "Neunundneunzig Luftballons",
			Trivia: "Song about the Cold War and nuclear paranoia",
		},
	},
	{
		ID: 25, Title: "Maniac", Artist: "Michael Sembello", Year: 1983,
		Hints: Hints{
			Emoji:  "🔥💃⚡",
			Lyric:  "She's a maniac, maniac on the floor",
			Trivia: "Featured in the movie Flashdance",
		},
	},
	{
		ID: 26, Title: "Come On Eileen", Artist: "Dexys Midnight Runners", Year: 1982,
		Hints: Hints{
			Emoji:  "🎺👗🍀",
			Lyric:  "Come on Eileen, oh I swear what he means",
			Trivia: "The band wore overalls and had a Celtic folk influence",
		},
	},
	{
		ID: 27, Title: "Love Is a Battlefield", Artist: "Pat Benatar", Year: 1983,
		Hints: Hints{
			Emoji:  "💔⚔️🎸",
			Lyric:  "We are young, heartache to heartache we stand",
			Trivia: "Music video features street dancing and was inspired by West Side Story",
		},
	},
	{
		ID: 28, Title: "The Safety Dance", Artist: "Men Without Hats", Year: 1982,
		Hints: Hints{
			Emoji:  "🕺⛑️🎪",
			Lyric:  "We can dance if we want to",
			Trivia: "About nuclear safety and the freedom to express yourself",
		},
	},
	{
		ID: 29, Title: "I Ran (So Far Away)", Artist: "A Flock of Seagulls", Year: 1982,
		Hints: Hints{
			Emoji:  "🏃‍♂️🌊🦅",
			Lyric:  "And I ran, I ran so far away",
			Trivia: "Known for the lead singer's distinctive asymmetrical haircut",
		},
	},
	{
		ID: 30, Title: "White Wedding", Artist: "Billy Idol", Year: 1982,
		Hints: Hints{
			Emoji:  "👰🔥🎸",
			Lyric:  "It's a nice day for a white wedding",
			Trivia: "Written about his sister's wedding day",
		},
	},
	{
		ID: 31, Title: "Burning Down the House", Artist: "Talking Heads", Year: 1983,
		Hints: Hints{
			Emoji:  "🏠🔥🎤",
			Lyric:  "Burning down the house",
			Trivia: "Inspired by Parliament-Funkadelic's funk rhythms",
		},
	},
	{
		ID: 32, Title: "Der Kommissar", Artist: "After the Fire", Year: 1982,
		Hints: Hints{
			Emoji:  "👮‍♂️🚔🇩🇪",
			Lyric:  "Don't turn around, uh-oh",
			Trivia: "English cover of a German song by Falco",
		},
	},
	{
		ID: 33, Title: "Video Killed the Radio Star", Artist: "The Buggles", Year: 1979,
		Hints: Hints{
			Emoji:  "📺📻⭐",
			Lyric:  "In my mind and in my car",
			Trivia: "First music video ever played on MTV",
		},
	},
	{
		ID: 34, Title: "Relax", Artist: "Frankie Goes to Hollywood", Year: 1983,
		Hints: Hints{
			Emoji:  "😌🌊💫",
			Lyric:  "Relax, don't do it",
			Trivia: "Banned by BBC for suggestive lyrics",
		},
	},
	{
		ID: 35, Title: "Message in a Bottle", Artist: "The Police", Year: 1979,
		Hints: Hints{
			Emoji:  "🍾📜🌊",
			Lyric:  "Just a castaway, an island lost at sea",
			Trivia: "Features a distinctive guitar riff and reggae influence",
		},
	},
	{
		ID: 36, Title: "Call Me", Artist: "Blondie", Year: 1980,
		Hints: Hints{
			Emoji:  "📞💋🎸",
			Lyric:  "Call me on the line, call me call me any anytime",
			Trivia: "Written for the movie American Gigolo",
		},
	},
	{
		ID: 37, Title: "Centerfold", Artist: "The J. Geils Band", Year: 1981,
		Hints: Hints{
			Emoji:  "📖👀💕",
			Lyric:  "My blood runs cold, my memory has just been sold",
			Trivia: "About recognizing a former classmate in a magazine",
		},
	},
	{
		ID: 38, Title: "Whip It", Artist: "Devo", Year: 1980,
		Hints: Hints{
			Emoji:  "🔴🎯⚡",
			Lyric:  "When a problem comes along, you must whip it",
			Trivia: "Band known for their robotic performances and red energy dome hats",
		},
	},
	{
		ID: 39, Title: "Let's Go", Artist: "The Cars", Year: 1979,
		Hints: Hints{
			Emoji:  "🚗💨🌃",
			Lyric:  "She's running around town with her head up high",
			Trivia: "Featured synthesizers which were revolutionary for rock music",
		},
	},
	{
		ID: 40, Title: "Just What I Needed", Artist: "The Cars", Year: 1978,
		Hints: Hints{
			Emoji:  "❤️🎸✨",
			Lyric:  "I don't mind you hanging out",
			Trivia: "The Cars' debut single that launched their career",
		},
	},
}
