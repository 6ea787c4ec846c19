package testutil

// Game ids used by the fixture payloads.
const (
	LegacyGameID = "2022030236"
	EdgeGameID   = "2023020248"
)

// LegacyFeedJSON is a trimmed legacy live feed. SEA (55) visits DAL (25); the
// game is final and has two shot attempts per team plus two non-shot plays.
const LegacyFeedJSON = `{
  "gamePk": 2022030236,
  "gameData": {
    "datetime": {"dateTime": "2022-09-27T02:00:00Z"},
    "teams": {
      "away": {"id": 55, "abbreviation": "SEA", "name": "Seattle Kraken"},
      "home": {"id": 25, "abbreviation": "DAL", "name": "Dallas Stars"}
    }
  },
  "liveData": {
    "linescore": {
      "currentPeriodTimeRemaining": "Final",
      "currentPeriodOrdinal": "3rd",
      "teams": {
        "away": {"goals": 5, "shotsOnGoal": 30},
        "home": {"goals": 2, "shotsOnGoal": 28}
      }
    },
    "plays": {
      "allPlays": [
        {"result": {"eventTypeId": "FACEOFF"}, "about": {"period": 1}, "coordinates": {"x": 0, "y": 0}, "team": {"id": 55, "triCode": "SEA"}},
        {"result": {"eventTypeId": "SHOT"}, "about": {"period": 1}, "coordinates": {"x": 70, "y": 10}, "team": {"id": 55, "triCode": "SEA"}},
        {"result": {"eventTypeId": "MISSED_SHOT"}, "about": {"period": 1}, "coordinates": {"x": -60, "y": 5}, "team": {"id": 25, "triCode": "DAL"}},
        {"result": {"eventTypeId": "GOAL"}, "about": {"period": 2}, "coordinates": {"x": -80, "y": -3}, "team": {"id": 55, "triCode": "SEA"}},
        {"result": {"eventTypeId": "BLOCKED_SHOT"}, "about": {"period": 3}, "coordinates": {"x": 50, "y": 20}, "team": {"triCode": "DAL"}},
        {"result": {"eventTypeId": "HIT"}, "about": {"period": 3}, "coordinates": {"x": 12, "y": -30}, "team": {"id": 25, "triCode": "DAL"}}
      ]
    }
  }
}`

// EdgeLandingJSON is a trimmed gamecenter landing document for a game in overtime.
const EdgeLandingJSON = `{
  "id": 2023020248,
  "gameState": "LIVE",
  "startTimeUTC": "2023-11-12T00:00:00Z",
  "periodDescriptor": {"number": 4, "periodType": "OT"},
  "clock": {"timeRemaining": "03:21", "running": true},
  "awayTeam": {"id": 10, "abbrev": {"default": "TOR"}, "score": 2, "sog": 18},
  "homeTeam": {"id": 6, "abbrev": "BOS", "score": 3, "sog": 22}
}`

// EdgeBoxscoreJSON is a trimmed gamecenter boxscore document.
const EdgeBoxscoreJSON = `{
  "id": 2023020248,
  "awayTeam": {"id": 10, "abbrev": "TOR", "score": 2, "sog": 18},
  "homeTeam": {"id": 6, "abbrev": "BOS", "score": 3, "sog": 22}
}`

// EdgePlayByPlayJSON holds two TOR and two BOS shot attempts around a faceoff.
const EdgePlayByPlayJSON = `{
  "id": 2023020248,
  "awayTeam": {"id": 10, "abbrev": {"default": "TOR"}},
  "homeTeam": {"id": 6, "abbrev": {"default": "BOS"}},
  "plays": [
    {"typeDescKey": "faceoff", "periodDescriptor": {"number": 1}, "details": {"xCoord": 0, "yCoord": 0, "eventOwnerTeamId": 6}},
    {"typeDescKey": "shot-on-goal", "periodDescriptor": {"number": 1}, "details": {"xCoord": -75, "yCoord": 12, "eventOwnerTeamId": 10}},
    {"typeDescKey": "goal", "periodDescriptor": {"number": 2}, "details": {"xCoord": 82, "yCoord": -4, "eventOwnerTeamId": 6}},
    {"typeDescKey": "missed-shot", "periodDescriptor": {"number": 3}, "details": {"xCoord": -30, "yCoord": 25, "eventOwnerTeamId": 6}},
    {"typeDescKey": "blocked-shot", "periodDescriptor": {"number": 4}, "details": {"xCoord": 40, "yCoord": -8, "eventOwnerTeamId": 10}}
  ]
}`

// LegacyScheduleJSON is a trimmed legacy team schedule with two games.
const LegacyScheduleJSON = `{
  "dates": [
    {"date": "2022-09-26", "games": [
      {"gamePk": 2022010001, "gameDate": "2022-09-27T02:00:00Z",
       "status": {"detailedState": "Final"},
       "teams": {"away": {"team": {"id": 55, "name": "Seattle Kraken"}}, "home": {"team": {"id": 24, "name": "Anaheim Ducks"}}}}
    ]},
    {"date": "2022-10-13", "games": [
      {"gamePk": 2022020017, "gameDate": "2022-10-13T02:00:00Z",
       "status": {"detailedState": "Scheduled"},
       "teams": {"away": {"team": {"id": 55, "name": "Seattle Kraken"}}, "home": {"team": {"id": 54, "name": "Vegas Golden Knights"}}}}
    ]}
  ]
}`
