package usecases

import (
	"net/url"

	"interact-club.backend/internal/domain/entities"
)

// Sample content loaded by SeedUsecase. Fresh values are built on every call
// so repositories can assign ids.

const avatarBase = "https://ui-avatars.com/api/"

func boardSeed(name, position, mailbox string, order int) *entities.BoardMember {
	q := url.Values{}
	q.Set("name", name)
	q.Set("size", "200")
	q.Set("background", "1F5DAA")
	q.Set("color", "fff")
	return &entities.BoardMember{
		Name:     "Itr. " + name,
		Position: position,
		Email:    mailbox + ".interactkop@gmail.com",
		Image:    avatarBase + "?" + q.Encode(),
		Order:    order,
	}
}

func seedBoardMembers() []*entities.BoardMember {
	return []*entities.BoardMember{
		boardSeed("Khushi Gaikwad", "President", "president", 1),
		boardSeed("Soham Nagdev", "Vice President", "vicepresident", 2),
		boardSeed("Diyaan Oswal", "Secretary", "secretary", 3),
		boardSeed("Kiara Patil", "Joint Secretary", "jointsecretary", 4),
		boardSeed("Raghav Patil", "Treasurer", "treasurer", 5),
		boardSeed("Rajwardhan Pise", "Sergeant at Arms", "sergeantatarms", 6),
		boardSeed("Aarnav Lad", "Immediate Past President", "ipp", 7),
		boardSeed("Pearl Rohida", "Rotary Interact Coordinator", "rotarycoordinator", 8),
		boardSeed("Om Malani", "International Service Director", "intnationalservice", 9),
		boardSeed("Devanshi Edate", "Community Service Director", "communityservice", 10),
		boardSeed("Om Dembani", "Club Service Director", "clubservice", 11),
		boardSeed("Aarush Gaikwad", "Professional Service Director", "professionalservice", 12),
		boardSeed("Yuti Patel", "Public Relations Director", "publicrelations", 13),
	}
}

func seedPastEvents() []*entities.PastEvent {
	return []*entities.PastEvent{
		{
			Title:       "Blood Donation Camp",
			Date:        "2024-11-15",
			Description: "Successfully organized a blood donation camp in collaboration with local hospitals, collecting over 100 units of blood.",
			Images: []string{
				"https://images.unsplash.com/photo-1615461065929-4f8ffed6ca40?w=800&q=80",
				"https://images.unsplash.com/photo-1582719471137-c3967ffb1c42?w=800&q=80",
			},
		},
		{
			Title:       "Tree Plantation Drive",
			Date:        "2024-10-05",
			Description: "Planted 500+ saplings across Kolhapur to promote environmental conservation and create awareness about climate change.",
			Images: []string{
				"https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?w=800&q=80",
				"https://images.unsplash.com/photo-1466692476868-aef1dfb1e735?w=800&q=80",
			},
		},
		{
			Title:       "Education for All",
			Date:        "2024-09-20",
			Description: "Distributed educational supplies and books to underprivileged children in rural areas of Kolhapur district.",
			Images: []string{
				"https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=800&q=80",
				"https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=800&q=80",
			},
		},
	}
}

func seedUpcomingEvents() []*entities.UpcomingEvent {
	return []*entities.UpcomingEvent{
		{
			Title:            "Youth Leadership Summit",
			Date:             "2025-03-15",
			Time:             "10:00 AM",
			Venue:            "Kolhapur Convention Center",
			Description:      "Join us for an inspiring day of leadership workshops, motivational talks, and networking opportunities for young leaders.",
			RegistrationOpen: true,
		},
		{
			Title:            "Community Clean-Up Drive",
			Date:             "2025-02-28",
			Time:             "7:00 AM",
			Venue:            "Rankala Lake",
			Description:      "Help us keep Kolhapur clean! Join our community clean-up initiative at Rankala Lake.",
			RegistrationOpen: true,
		},
		{
			Title:            "Digital Literacy Workshop",
			Date:             "2025-04-10",
			Time:             "2:00 PM",
			Venue:            "City Library",
			Description:      "Teaching basic computer skills and internet safety to senior citizens and students.",
			RegistrationOpen: false,
		},
	}
}

func seedNews() []*entities.NewsArticle {
	return []*entities.NewsArticle{
		{
			Title:   "Interact Club Kolhapur Receives Recognition Award",
			Date:    "2024-12-01",
			Excerpt: "Our club has been recognized for outstanding community service by Rotary International District 3132.",
			Content: "We are proud to announce that Interact Club of Kolhapur has received the District Recognition Award for our exceptional community service initiatives...",
			Image:   "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&q=80",
		},
		{
			Title:   "New Board Members Installed for 2024-25",
			Date:    "2024-07-15",
			Excerpt: "Meet our dynamic new board of directors who will lead the club in the upcoming year.",
			Content: "The installation ceremony for the 2024-25 board was held with great enthusiasm. We welcome our new leaders...",
			Image:   "https://images.unsplash.com/photo-1511632765486-a01980e01a18?w=800&q=80",
		},
		{
			Title:   "1000+ Meals Served to Underprivileged",
			Date:    "2024-11-20",
			Excerpt: "Our Hunger Relief Project reached a milestone by serving nutritious meals to those in need.",
			Content: "Through our dedicated volunteers and generous donors, we've successfully served over 1000 meals this month...",
			Image:   "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?w=800&q=80",
		},
	}
}

func seedGallery() []*entities.GalleryImage {
	return []*entities.GalleryImage{
		{URL: "https://images.unsplash.com/photo-1559027615-cd4628902d4a?w=800&q=80", Caption: "Annual Interact Meet 2024"},
		{URL: "https://images.unsplash.com/photo-1582213782179-e0d53f98f2ca?w=800&q=80", Caption: "Community Service Project"},
		{URL: "https://images.unsplash.com/photo-1588196749597-9ff075ee6b5b?w=800&q=80", Caption: "Team Building Workshop"},
		{URL: "https://images.unsplash.com/photo-1529070538774-1843cb3265df?w=800&q=80", Caption: "Environmental Initiative"},
		{URL: "https://images.unsplash.com/photo-1556761175-b413da4baf72?w=800&q=80", Caption: "Youth Empowerment Session"},
		{URL: "https://images.unsplash.com/photo-1469571486292-0ba58a3f068b?w=800&q=80", Caption: "District Conference"},
	}
}
