package validators

import "go.mongodb.org/mongo-driver/bson"

// AppointmentValidator is the store-side schema for the bookings collection.
// It backs up the application-level validation so nothing malformed lands in
// the collection through another client.
var AppointmentValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"patientName",
			"treatment",
			"date",
			"timeSlot",
			"status",
			"createdAt",
			"updatedAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"patientName": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 20,
			},

			"email": bson.M{
				"bsonType": "string",
				"pattern":  `^\S+@\S+\.\S+$`,
			},

			"phone": bson.M{
				"bsonType": "string",
				"pattern":  `^\+91[0-9]{10}$`,
			},

			"gender": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Male",
					"Female",
					"Other",
				},
			},

			"age": bson.M{
				"bsonType": []string{"int", "long", "double"},
				"minimum":  0,
			},

			"treatment": bson.M{
				"bsonType": "string",
				"enum": []string{
					"General Checkup",
					"Pediatrics",
					"Cardiology",
					"ENT",
				},
			},

			"date": bson.M{
				"bsonType": "date",
			},

			"timeSlot": bson.M{
				"bsonType": "string",
				"enum": []string{
					"09:00 - 10:00",
					"10:00 - 11:00",
					"11:00 - 12:00",
					"14:00 - 15:00",
				},
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Pending",
					"Confirmed",
					"Completed",
				},
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},

			"updatedAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
