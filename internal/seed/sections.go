package seed

import (
	"github.com/sirspot/resume/pkg/entry"
	"github.com/sirspot/resume/pkg/resume"
	"github.com/sirspot/resume/pkg/section"
)

// Fixed section indexes.
const (
	Accomplishments = iota
	Education
	WorkHistory
	Experience
	Tools
	Projects
	Interests
	SectionCount
)

func undated(texts ...string) []resume.EntryDef {
	defs := make([]resume.EntryDef, len(texts))
	for i, t := range texts {
		defs[i] = resume.EntryDef{Text: t}
	}
	return defs
}

// Sections returns the fixed sections in index order.
func Sections() []resume.SectionDef {
	defs := make([]resume.SectionDef, SectionCount)

	defs[Accomplishments] = resume.SectionDef{
		Title: "Accomplishments",
		Limit: 5,
		Order: section.Random,
		Dates: section.HideAll,
		Entries: undated(
			"Coldfire bare-metal Ethernet driver using ring-buffer and DMA",
			"static memory TCP/IP library for Atmel and ported to Coldfire and AM335X (Sitara)",
			"FAT32 library with long file name support for Atmel and ported to Coldfire and AM335X (Sitara)",
			"multi-screen touch panel GUI editor including integration with UDP data from controllers",
			"Blackfin ucLinux kernel modules for SPI and SPORT (TDM) communication with two CS42448",
			"custom board with TI CC3200 module for remote HVAC 24VAC and differential pressure monitoring",
			"iOS app for local network communication and file transfer with HVAC monitor",
			"frame-accurate sequence timeline rendering with collapsible groups and interactive media scrubbing",
			"communication protocol and audio status monitoring for on-board ride vehicle audio player",
			"automatic detection of network modules and mounting of NFS shares for multichannel audio/video player",
			"remote firmware update capability for uBoot and Linux on Blackfin",
			"multi-channel WAV and MP3 audio playback control and configuration software",
			"reliable transfer of image files over Modbus using sequenced data chunks with CRC16",
			"complete XML reader / writer with integrated motification history tracker",
			"closed over 500 customer and end-user support tickets",
			"integrated 3rd party lighting controller with train signals over the Tempe Salt River bridge",
		),
	}

	defs[Education] = resume.SectionDef{
		Title: "Education",
		Limit: section.All,
		Order: section.NewestFirst,
		Field: entry.TimeEnd,
		Dates: section.ShowEndOnly | section.ShowYearOnly,
		Entries: []resume.EntryDef{
			{Text: "Bachelor of Science - Computer Science - Stetson University", Start: "1999-08-01", End: "2003-05-01"},
		},
	}

	defs[WorkHistory] = resume.SectionDef{
		Title: "Work History",
		Limit: section.All,
		Order: section.NewestFirst,
		Dates: section.ShowYearOnly,
		Entries: []resume.EntryDef{
			{Text: "Alcorn McBride", Start: "2006-02-06"},
		},
	}

	defs[Experience] = resume.SectionDef{
		Title: "Experience",
		Limit: 6,
		Order: section.NewestFirst,
		Dates: section.ShowStartOnly | section.HideStartDay,
		Entries: []resume.EntryDef{
			{Text: "add feature to adjust panel pc rotation by integrating a Powershell script with an existing Qt application", Start: "2024-01-01"},
			{Text: "fix bug in Product File Creator where user defined spaces were being stripped from the final output", Start: "2024-03-01"},
			{Text: "fix script import bugs that allowed script password to be bypassed", Start: "2024-08-01"},
			{Text: `fix script import bugs to identify when literals are used in place of variables for "if" events`, Start: "2024-08-01"},
			{Text: "guide junior developer to integrate timecode conversion function into expression parser", Start: "2024-09-01"},
			{Text: "generate jenkins pipelines for RideAmp and VPage Utils projects for Visual Studio 2022", Start: "2024-11-01"},
			{Text: "allow expression parser to include variable names with special characters and spaces", Start: "2023-04-01"},
			{Text: "fix memory leak in one-shot sequences by tracing the code paths used to allocate each event", Start: "2023-02-01"},
			{Text: "organize product files and reformat all xml simplify compare and merge operations", Start: "2022-11-01"},
			{Text: "allow copy and paste between WinScript Live version 5 and 6", Start: "2022-12-01"},
			{Text: "expand live mode sequence status to include pre-roll and looping states", Start: "2022-07-01"},
			{Text: "allow winscriot live events view to split display of grid and timeline in the same frame", Start: "2022-05-01"},
			{Text: "modify timeline graphics to match WinScript live 6 mockups", Start: "2022-03-01"},
			{Text: "fix problem loading fonts that have the same name but different weights", Start: "2021-06-01"},
			{Text: "redesign button action dialog to allow multiple actions for release and a separate action for press", Start: "2021-03-01"},
			{Text: "simplify Visual Studio projects using property sheets", Start: "2021-01-31"},
			{Text: "improve GPS parser to support decimal degrees from GPRMC messages", Start: "2013-10-01"},
			{Text: "use PHP to load raw json data from a database then convert it for use with FusionCharts XT Javscript library", Start: "2019-12-01"},
			{Text: "add feature to WinScript Live to track the active sequence and automatically display all variables in a watch list", Start: "2024-05-01"},
			{Text: "improve visibility into sequence scheduling by integrating a time database into the debug code", Start: "2024-07-01"},
			{Text: "update ShowTouch to work with latest OEM panel pc running Windows 10 IoT", Start: "2024-07-01"},
		},
	}

	defs[Tools] = resume.SectionDef{
		Title: "Tools",
		Limit: section.All,
		Order: section.Random,
		Dates: section.HideAll,
		Entries: undated(
			"Git / github.com / bitbucket.org",
			"SVN",
			"Microsoft Visual Studio",
			"Eclipse / ARM DS5",
			"Qt Creator",
			"Corel Draw",
			"Adobe Photoshop",
			"Adobe After Effects",
			"Wireshark / tcpdump",
			"VS Code",
			"VMWare Workstation / Virtual Box",
		),
	}

	defs[Projects] = resume.SectionDef{
		Title: "Projects",
		Limit: 5,
		Order: section.Random,
		Dates: section.HideAll,
		Entries: undated(
			"bottle cap motion sensor using Arduino with C++",
			"digital audio recorder settings GUI using Qt for Windows and MacOS",
			`"Yuri on Ice" themed ice-skating game using HTML5, Zim, and Javascript`,
			"UDP tool using Qt and Npcap to monitor, send, and receive unicast, multicast, and broadcast datagrams.",
			"DMX512 visual data file editor using Qt",
			"WinMerge plugin to extract XML data from a proprietary archive file format",
			"GPS visualization tool for trigger zones and live positioning data",
			"text based UDP protocol and gateway server for file system, SMTP, IMAP, and HTTPS access",
		),
	}

	defs[Interests] = resume.SectionDef{
		Title:   "Interests",
		Limit:   5,
		Order:   section.Random,
		Dates:   section.HideAll,
		Entries: append(append(append(undated(games...), undated(sports...)...), undated(movies...)...), undated(music...)...),
	}

	return defs
}

var games = []string{
	"Video Games - Dr Mario",
	"Video Games - Astro Bot",
	"Video Games - Stormworks",
	"Video Games - Bloons TD 6",
	"Video Games - Civilization VI",
	"Video Games - Donut County",
	"Video Games - Minecraft",
	"Video Games - Teardown",
	"Video Games - Everybody's Golf",
	"Video Games - Border Bots VR",
	"Video Games - Subnautica",
	"Video Games - Just Cause 3",
	"Video Games - TMNT: Shredder's Revenge",
	"Video Games - Subnautica",
	"Video Games - Rogue Tower",
	"Video Games - Subnautica",
	"Video Games - Sanctum",
	"Video Games - Command & Conquer",
	"Video Games - Homeworld",
	"Video Games - Super Smash Brothers",
	"Video Games - Mario Kart 8",
	"Video Games - Portal",
	"Video Games - LEGO City Undercover",
	"Video Games - Worms Armageddon",
}

var sports = []string{
	"Sports - Flag Football",
	"Sports - Basketball",
	"Sports - Tae Kwon Do",
	"Sports - Racquetball",
	"Sports - Crossfit",
	"Sports - Fun Run/Walk",
}

var movies = []string{
	"Movies - Rat Race",
	"Movies - Stargate",
	"Movies - Robin Hood: Men in Tights",
	"Movies - Despicable Me",
	"Movies - Down Periscope",
	"Movies - Crazy Rich Asians",
	"Movies - The Last Samurai",
	"Movies - LEGO Movie",
	"Movies - Tron: Legacy",
	"Movies - Mars Attacks",
	"Movies - Demolition Man",
	"Movies - Harry Potter",
	"Movies - Lord of the Rings",
	"Movies - First Knight",
	"Movies - Gaurdians of the Galaxy",
	"Movies - Contact",
	"Movies - Hotel Transylvania",
	"Movies - Idiocracy",
	"Movies - Independence Day",
	"Movies - John Carter",
	"Movies - Inside Out",
	"Movies - Jurassic Park",
	"Movies - Pitch Perfect",
	"Movies - TMNT",
	"Movies - Trolls",
	"Movies - Valerian",
	"Movies - The Fifth Element",
	"Movies - The Matrix",
	"Movies - The Hunt for Red October",
	"Movies - Groundhog Day",
}

var music = []string{
	"Music - Noisestorm",
	"Music - Stray Kids",
	"Music - Robert Miles",
	"Music - Sofi Tucker",
	"Music - They Might be Giants",
	"Music - BTS",
	"Music - Aespa",
	"Music - Miami Sound Machine",
	"Music - Vangelis",
	"Music - Daft Punk",
	"Music - Lionel Richie",
	"Music - The Black Eyed Peas",
	"Music - Olive",
	"Music - Sade",
}
