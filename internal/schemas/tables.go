package schemas

// Schema documents for the reference data tables and the user profile.
// Reference tables are arrays rather than objects so that the
// author-defined declaration order survives the round trip through JSON.

// KeywordTable validates keywords.json
const KeywordTable = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "KeywordTable",
  "type": "object",
  "required": ["categories"],
  "properties": {
    "categories": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "keywords"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "keywords": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string", "minLength": 1, "pattern": "^\\S+$"}
          }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// RoleBundles validates interviews.json
const RoleBundles = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "RoleBundles",
  "type": "object",
  "required": ["roles"],
  "properties": {
    "roles": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["role", "questions", "tips", "topics"],
        "properties": {
          "role": {"type": "string", "minLength": 1},
          "questions": {"type": "array", "items": {"type": "string", "minLength": 1}},
          "tips": {"type": "array", "items": {"type": "string", "minLength": 1}},
          "topics": {"type": "array", "items": {"type": "string", "minLength": 1}}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// CareerPaths validates career_paths.json
const CareerPaths = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "CareerPaths",
  "type": "object",
  "required": ["paths"],
  "properties": {
    "paths": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "keywords", "next_steps"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "keywords": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string", "minLength": 1}
          },
          "next_steps": {"type": "array", "items": {"type": "string", "minLength": 1}}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// PlanBook validates plan_templates.json
const PlanBook = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "PlanBook",
  "type": "object",
  "required": ["timeline_weeks", "timeline", "base", "levels"],
  "properties": {
    "timeline_weeks": {"type": "integer", "minimum": 1},
    "timeline": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
    "base": {
      "type": "object",
      "required": ["daily_tasks", "weekly_tasks", "resources"],
      "properties": {
        "daily_tasks": {"type": "array", "items": {"type": "string", "minLength": 1}},
        "weekly_tasks": {"type": "array", "items": {"type": "string", "minLength": 1}},
        "resources": {"type": "array", "items": {"type": "string", "minLength": 1}}
      },
      "additionalProperties": false
    },
    "levels": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["level"],
        "properties": {
          "level": {"type": "string", "minLength": 1},
          "daily_tasks": {"type": "array", "items": {"type": "string", "minLength": 1}},
          "weekly_tasks": {"type": "array", "items": {"type": "string", "minLength": 1}},
          "resources": {"type": "array", "items": {"type": "string", "minLength": 1}}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// UserProfile validates a saved profile file
const UserProfile = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "UserProfile",
  "type": "object",
  "required": ["name"],
  "properties": {
    "id": {"type": "string"},
    "name": {"type": "string", "minLength": 1},
    "current_title": {"type": "string"},
    "years_experience": {"type": "integer", "minimum": 0},
    "education": {"type": "string"},
    "skills": {"type": "array", "items": {"type": "string"}},
    "last_updated": {"type": "string"}
  },
  "additionalProperties": false
}`
